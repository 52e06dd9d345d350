// FILE: internal/dto/cart_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// CartLineMessage is the payload published for each committed bundle line.
type CartLineMessage struct {
	UserId          uuid.UUID           `json:"user_id"`
	ProductId       string              `json:"product_id"`
	ProductTitle    string              `json:"product_title"`
	VariantId       string              `json:"variant_id"`
	VariantTitle    string              `json:"variant_title"`
	UnitPrice       string              `json:"unit_price"`
	CurrencyCode    string              `json:"currency_code"`
	Quantity        int                 `json:"quantity"`
	SelectedOptions []SelectedOptionDTO `json:"selected_options"`
}

type CartLineResponse struct {
	Id              uuid.UUID           `json:"id"`
	ProductId       string              `json:"product_id"`
	ProductTitle    string              `json:"product_title"`
	VariantId       string              `json:"variant_id"`
	VariantTitle    string              `json:"variant_title"`
	UnitPrice       MoneyDTO            `json:"unit_price"`
	Quantity        int                 `json:"quantity"`
	SelectedOptions []SelectedOptionDTO `json:"selected_options"`
}

type CartResponse struct {
	Id        uuid.UUID          `json:"id"`
	Lines     []CartLineResponse `json:"lines"`
	ItemCount int                `json:"item_count"`
	Subtotal  string             `json:"subtotal"`
	UpdatedAt *time.Time         `json:"updated_at"`
}
