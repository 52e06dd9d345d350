package mapper

import (
	"storefront-be/internal/dto"
	"storefront-be/internal/entity"
	"storefront-be/pkg/bundle"
)

func ToMoneyDTO(m entity.Money) dto.MoneyDTO {
	return dto.MoneyDTO{Amount: bundle.FormatAmount(m.Amount), CurrencyCode: m.CurrencyCode}
}

func ToOptionDTOs(opts []entity.SelectedOption) []dto.SelectedOptionDTO {
	out := make([]dto.SelectedOptionDTO, 0, len(opts))
	for _, o := range opts {
		out = append(out, dto.SelectedOptionDTO{Name: o.Name, Value: o.Value})
	}
	return out
}

func FromOptionDTOs(opts []dto.SelectedOptionDTO) []entity.SelectedOption {
	out := make([]entity.SelectedOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, entity.SelectedOption{Name: o.Name, Value: o.Value})
	}
	return out
}

// ToProductCard shows the cheapest variant price, which is what bundles sum.
func ToProductCard(p entity.Product, img bundle.ResolvedImage) dto.ProductCard {
	return dto.ProductCard{
		Id:               p.Id,
		Title:            p.Title,
		Handle:           p.Handle,
		ProductType:      p.ProductType,
		Price:            ToMoneyDTO(p.MinVariantPrice()),
		AvailableForSale: p.AvailableForSale,
		Image:            dto.ImageDTO{URL: img.URL, AltText: img.AltText},
		HasVariant:       p.FirstVariant() != nil,
	}
}

func ToProductResponse(p entity.Product, img bundle.ResolvedImage) *dto.ProductResponse {
	res := &dto.ProductResponse{
		ProductCard: ToProductCard(p, img),
		Variants:    make([]dto.VariantDTO, 0, len(p.Variants)),
	}
	for _, v := range p.Variants {
		res.Variants = append(res.Variants, dto.VariantDTO{
			Id:               v.Id,
			Title:            v.Title,
			Price:            ToMoneyDTO(v.Price),
			AvailableForSale: v.AvailableForSale,
			SelectedOptions:  ToOptionDTOs(v.SelectedOptions),
		})
	}
	return res
}

func ToBundleTotalsDTO(t bundle.Totals) dto.BundleTotalsDTO {
	f := t.Formatted()
	return dto.BundleTotalsDTO{
		Total:         f.Total,
		Bundle:        f.Bundle,
		Savings:       f.Savings,
		DiscountRate:  f.DiscountRate,
		CurrencyCode:  f.CurrencyCode,
		SelectedCount: t.SelectedCount,
	}
}

func ToBundleResponse(id string, s bundle.Snapshot) *dto.BundleResponse {
	res := &dto.BundleResponse{
		Id:        id,
		Version:   s.Version,
		Policy:    string(s.Policy),
		Loading:   s.Loading,
		Rendered:  s.Rendered,
		Items:     make([]dto.BundleItemDTO, 0, len(s.Members)),
		Totals:    ToBundleTotalsDTO(s.Totals),
		CanCommit: s.CanCommit,
	}
	if s.Source != nil {
		res.SourceId = s.Source.Id
	}
	for _, m := range s.Members {
		res.Items = append(res.Items, dto.BundleItemDTO{
			ProductCard: ToProductCard(m.Product, m.Image),
			Selected:    m.Selected,
			IsSource:    m.IsSource,
		})
	}
	return res
}

func ToCartResponse(c *entity.Cart) *dto.CartResponse {
	res := &dto.CartResponse{
		Id:        c.Id,
		Lines:     make([]dto.CartLineResponse, 0, len(c.Lines)),
		ItemCount: c.ItemCount(),
		Subtotal:  bundle.FormatAmount(c.Subtotal()),
		UpdatedAt: c.UpdatedAt,
	}
	for _, l := range c.Lines {
		res.Lines = append(res.Lines, dto.CartLineResponse{
			Id:              l.Id,
			ProductId:       l.ProductId,
			ProductTitle:    l.ProductTitle,
			VariantId:       l.VariantId,
			VariantTitle:    l.VariantTitle,
			UnitPrice:       entityMoney(l),
			Quantity:        l.Quantity,
			SelectedOptions: ToOptionDTOs(l.SelectedOptions),
		})
	}
	return res
}

func entityMoney(l *entity.CartLine) dto.MoneyDTO {
	return ToMoneyDTO(entity.Money{Amount: l.UnitPrice, CurrencyCode: l.CurrencyCode})
}
