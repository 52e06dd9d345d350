package bundle

import (
	"context"
	"sync"

	"storefront-be/internal/entity"
	"storefront-be/pkg/catalog"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func usd(amount string) entity.Money {
	return entity.Money{Amount: decimal.RequireFromString(amount), CurrencyCode: "USD"}
}

func product(id, title, price string) entity.Product {
	return entity.Product{
		Id:               id,
		Title:            title,
		Price:            usd(price),
		AvailableForSale: true,
		Variants: []entity.Variant{{
			Id:               id + "-v1",
			Title:            "Default",
			Price:            usd(price),
			AvailableForSale: true,
			SelectedOptions:  []entity.SelectedOption{{Name: "Size", Value: "M"}},
		}},
	}
}

type fetchCall struct {
	maxCount int
	filter   catalog.Filter
}

type fakeCatalog struct {
	mu      sync.Mutex
	results map[catalog.Filter][]entity.Product
	err     error
	calls   []fetchCall
	gates   map[catalog.Filter]chan struct{}
	entered chan catalog.Filter
}

func (f *fakeCatalog) Fetch(ctx context.Context, maxCount int, filter catalog.Filter) ([]entity.Product, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fetchCall{maxCount: maxCount, filter: filter})
	gate := f.gates[filter]
	f.mu.Unlock()

	if f.entered != nil {
		f.entered <- filter
	}
	if gate != nil {
		<-gate
	}
	if f.err != nil {
		return nil, f.err
	}
	res := f.results[filter]
	if len(res) > maxCount {
		res = res[:maxCount]
	}
	return res, nil
}

type fakeCart struct {
	lines []LineItem
}

func (c *fakeCart) AddLine(_ context.Context, line LineItem) {
	c.lines = append(c.lines, line)
}

type notification struct {
	message string
	detail  string
}

type fakeSink struct {
	sent []notification
}

func (s *fakeSink) NotifySuccess(_ context.Context, message, detail string) {
	s.sent = append(s.sent, notification{message: message, detail: detail})
}
