package mapper

import (
	"time"

	"storefront-be/internal/entity"
	"storefront-be/internal/model"
)

type CartMapper struct{}

func NewCartMapper() *CartMapper {
	return &CartMapper{}
}

func (m *CartMapper) ToEntity(c *model.Cart) *entity.Cart {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	e := &entity.Cart{
		Id:        c.Id,
		UserId:    c.UserId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
	for _, l := range c.Lines {
		e.Lines = append(e.Lines, m.LineToEntity(l))
	}
	return e
}

func (m *CartMapper) LineToEntity(l *model.CartLine) *entity.CartLine {
	if l == nil {
		return nil
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.CartLine{
		Id:              l.Id,
		CartId:          l.CartId,
		ProductId:       l.ProductId,
		ProductTitle:    l.ProductTitle,
		VariantId:       l.VariantId,
		VariantTitle:    l.VariantTitle,
		UnitPrice:       l.UnitPrice,
		CurrencyCode:    l.CurrencyCode,
		Quantity:        l.Quantity,
		SelectedOptions: decodeOptions(l.SelectedOptions),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *CartMapper) LineToModel(l *entity.CartLine) *model.CartLine {
	if l == nil {
		return nil
	}

	return &model.CartLine{
		Id:              l.Id,
		CartId:          l.CartId,
		ProductId:       l.ProductId,
		ProductTitle:    l.ProductTitle,
		VariantId:       l.VariantId,
		VariantTitle:    l.VariantTitle,
		UnitPrice:       l.UnitPrice,
		CurrencyCode:    l.CurrencyCode,
		Quantity:        l.Quantity,
		SelectedOptions: encodeOptions(l.SelectedOptions),
		CreatedAt:       l.CreatedAt,
	}
}
