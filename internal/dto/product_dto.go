// FILE: internal/dto/product_dto.go
package dto

// MoneyDTO carries amounts already rounded to two decimals.
type MoneyDTO struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code"`
}

type ImageDTO struct {
	URL     string  `json:"url"`
	AltText *string `json:"alt_text"`
}

type SelectedOptionDTO struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type VariantDTO struct {
	Id               string              `json:"id"`
	Title            string              `json:"title"`
	Price            MoneyDTO            `json:"price"`
	AvailableForSale bool                `json:"available_for_sale"`
	SelectedOptions  []SelectedOptionDTO `json:"selected_options"`
}

// ProductCard is the compact shape used in recommendation and bundle lists.
type ProductCard struct {
	Id               string   `json:"id"`
	Title            string   `json:"title"`
	Handle           *string  `json:"handle"`
	ProductType      *string  `json:"product_type"`
	Price            MoneyDTO `json:"price"`
	AvailableForSale bool     `json:"available_for_sale"`
	Image            ImageDTO `json:"image"`
	HasVariant       bool     `json:"has_variant"`
}

type ProductResponse struct {
	ProductCard
	Variants []VariantDTO `json:"variants"`
}

// RecommendationResponse has Rendered=false when the feature hid itself.
type RecommendationResponse struct {
	Rendered   bool          `json:"rendered"`
	Policy     string        `json:"policy"`
	Filter     string        `json:"filter"`
	Source     ProductCard   `json:"source"`
	Candidates []ProductCard `json:"candidates"`
}
