package main

import (
	"storefront-be/internal/entity"

	"github.com/shopspring/decimal"
)

func usd(amount string) entity.Money {
	return entity.Money{Amount: decimal.RequireFromString(amount), CurrencyCode: "USD"}
}

func ptr(s string) *string { return &s }

func sizes(id, price string, names ...string) []entity.Variant {
	out := make([]entity.Variant, 0, len(names))
	for _, n := range names {
		out = append(out, entity.Variant{
			Id:               id + "-" + n,
			Title:            n,
			Price:            usd(price),
			AvailableForSale: true,
			SelectedOptions:  []entity.SelectedOption{{Name: "Size", Value: n}},
		})
	}
	return out
}

// demoCatalog covers every association rule: compression products point at
// donning aids, donning aids point back, knee-highs point at ankle and crew
// styles, and everything else falls through to available products.
func demoCatalog() []entity.Product {
	return []entity.Product{
		{
			Id:               "prod-compression-knee-high",
			Title:            "Graduated Compression Knee High 20-30 mmHg",
			ProductType:      ptr("Compression Socks"),
			Handle:           ptr("compression-knee-high"),
			Price:            usd("24.99"),
			AvailableForSale: true,
			Variants:         sizes("prod-compression-knee-high", "24.99", "S", "M", "L", "XL"),
		},
		{
			Id:               "prod-compression-crew",
			Title:            "Everyday Compression Crew Sock",
			ProductType:      ptr("Compression Socks"),
			Handle:           ptr("compression-crew"),
			Price:            usd("18.50"),
			AvailableForSale: true,
			Variants:         sizes("prod-compression-crew", "18.50", "S", "M", "L"),
		},
		{
			Id:               "prod-compression-ankle",
			Title:            "Compression Ankle Sock",
			ProductType:      ptr("Compression Socks"),
			Handle:           ptr("compression-ankle"),
			Price:            usd("14.99"),
			AvailableForSale: true,
			Variants:         sizes("prod-compression-ankle", "14.99", "S", "M", "L"),
		},
		{
			Id:               "prod-donning-aid",
			Title:            "Sock Aid Donning Frame",
			ProductType:      ptr("Donning Sock"),
			Handle:           ptr("donning-aid"),
			Price:            usd("19.99"),
			AvailableForSale: true,
			Variants:         sizes("prod-donning-aid", "19.99", "Standard"),
		},
		{
			Id:               "prod-donning-glove",
			Title:            "Rubber Donning Gloves",
			ProductType:      ptr("Donning Sock"),
			Handle:           ptr("donning-gloves"),
			Price:            usd("14.99"),
			AvailableForSale: true,
			Variants:         sizes("prod-donning-glove", "14.99", "M", "L"),
		},
		{
			Id:               "prod-knee-sleeve",
			Title:            "Knee Support Sleeve",
			ProductType:      ptr("Supports"),
			Handle:           ptr("knee-sleeve"),
			Price:            usd("29.00"),
			AvailableForSale: true,
			Variants:         sizes("prod-knee-sleeve", "29.00", "M", "L"),
		},
		{
			Id:               "prod-footie",
			Title:            "Cushioned Footie Liner",
			ProductType:      ptr("Liners"),
			Handle:           ptr("footie-liner"),
			Price:            usd("9.99"),
			AvailableForSale: true,
			Variants:         sizes("prod-footie", "9.99", "One Size"),
		},
		{
			Id:               "prod-gift-card",
			Title:            "Gift Card",
			Handle:           ptr("gift-card"),
			Price:            usd("25.00"),
			AvailableForSale: true,
		},
	}
}
