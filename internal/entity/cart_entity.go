// FILE: internal/entity/cart_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Lines     []*CartLine
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type CartLine struct {
	Id              uuid.UUID
	CartId          uuid.UUID
	ProductId       string
	ProductTitle    string
	VariantId       string
	VariantTitle    string
	UnitPrice       decimal.Decimal
	CurrencyCode    string
	Quantity        int
	SelectedOptions []SelectedOption
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}
