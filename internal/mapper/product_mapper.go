package mapper

import (
	"encoding/json"
	"sort"

	"storefront-be/internal/entity"
	"storefront-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

// ToEntity orders variants and images by position so "first variant" and
// "first image" are stable.
func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	variants := make([]*model.ProductVariant, len(p.Variants))
	copy(variants, p.Variants)
	sort.SliceStable(variants, func(i, j int) bool { return variants[i].Position < variants[j].Position })

	images := make([]*model.ProductImage, len(p.Images))
	copy(images, p.Images)
	sort.SliceStable(images, func(i, j int) bool { return images[i].Position < images[j].Position })

	e := &entity.Product{
		Id:               p.Id,
		Title:            p.Title,
		ProductType:      p.ProductType,
		Handle:           p.Handle,
		Price:            entity.Money{Amount: p.Price, CurrencyCode: p.CurrencyCode},
		AvailableForSale: p.AvailableForSale,
	}

	for _, v := range variants {
		e.Variants = append(e.Variants, entity.Variant{
			Id:               v.Id,
			Title:            v.Title,
			Price:            entity.Money{Amount: v.Price, CurrencyCode: v.CurrencyCode},
			AvailableForSale: v.AvailableForSale,
			SelectedOptions:  decodeOptions(v.SelectedOptions),
		})
	}
	for _, img := range images {
		e.Images = append(e.Images, entity.ProductImage{URL: img.URL, AltText: img.AltText})
	}
	return e
}

func (m *ProductMapper) ToEntities(products []*model.Product) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if e := m.ToEntity(p); e != nil {
			out = append(out, *e)
		}
	}
	return out
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	mp := &model.Product{
		Id:               p.Id,
		Title:            p.Title,
		ProductType:      p.ProductType,
		Handle:           p.Handle,
		Price:            p.Price.Amount,
		CurrencyCode:     p.Price.CurrencyCode,
		AvailableForSale: p.AvailableForSale,
	}
	for i, v := range p.Variants {
		mp.Variants = append(mp.Variants, &model.ProductVariant{
			Id:               v.Id,
			ProductId:        p.Id,
			Title:            v.Title,
			Price:            v.Price.Amount,
			CurrencyCode:     v.Price.CurrencyCode,
			AvailableForSale: v.AvailableForSale,
			Position:         i,
			SelectedOptions:  encodeOptions(v.SelectedOptions),
		})
	}
	for i, img := range p.Images {
		mp.Images = append(mp.Images, &model.ProductImage{
			ProductId: p.Id,
			URL:       img.URL,
			AltText:   img.AltText,
			Position:  i,
		})
	}
	return mp
}

func decodeOptions(raw []byte) []entity.SelectedOption {
	if len(raw) == 0 {
		return nil
	}
	var opts []entity.SelectedOption
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil
	}
	return opts
}

func encodeOptions(opts []entity.SelectedOption) []byte {
	if len(opts) == 0 {
		return []byte("[]")
	}
	b, err := json.Marshal(opts)
	if err != nil {
		return []byte("[]")
	}
	return b
}
