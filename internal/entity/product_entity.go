// FILE: internal/entity/product_entity.go
package entity

import (
	"github.com/shopspring/decimal"
)

type Money struct {
	Amount       decimal.Decimal
	CurrencyCode string
}

type ProductImage struct {
	URL     string
	AltText *string
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Variant struct {
	Id               string
	Title            string
	Price            Money
	AvailableForSale bool
	SelectedOptions  []SelectedOption
}

// Product is read-only to the bundle engine. ProductType and Handle are
// optional in the catalog.
type Product struct {
	Id               string
	Title            string
	ProductType      *string
	Handle           *string
	Price            Money
	AvailableForSale bool
	Variants         []Variant
	Images           []ProductImage
}

// MinVariantPrice returns the cheapest variant price, or the list price when
// the product has no variants.
func (p *Product) MinVariantPrice() Money {
	if len(p.Variants) == 0 {
		return p.Price
	}
	min := p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price.Amount.LessThan(min.Amount) {
			min = v.Price
		}
	}
	return min
}

// FirstVariant returns nil when there is nothing addable.
func (p *Product) FirstVariant() *Variant {
	if len(p.Variants) == 0 {
		return nil
	}
	return &p.Variants[0]
}
