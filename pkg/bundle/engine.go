package bundle

import (
	"context"
	"fmt"

	"storefront-be/internal/entity"

	"github.com/shopspring/decimal"
)

const (
	commitMessage      = "Added to cart"
	commitDetailFormat = "%d items added"
)

// Engine owns the selection set for one source product and its candidates.
// It is not safe for concurrent use; View serializes access.
type Engine struct {
	policy   Policy
	members  []entity.Product
	index    map[string]int
	selected map[string]bool
}

type CommitResult struct {
	Added   int
	Skipped []string
}

// NewEngine starts with every member selected. The source comes first in
// display order, followed by the candidates.
func NewEngine(source entity.Product, candidates []entity.Product, policy Policy) *Engine {
	e := &Engine{
		policy: policy,
		index:  make(map[string]int, len(candidates)+1),
	}
	for _, p := range append([]entity.Product{source}, candidates...) {
		if _, dup := e.index[p.Id]; dup {
			continue
		}
		e.index[p.Id] = len(e.members)
		e.members = append(e.members, p)
	}
	e.Reset()
	return e
}

// Reset selects every member again.
func (e *Engine) Reset() {
	e.selected = make(map[string]bool, len(e.members))
	for _, p := range e.members {
		e.selected[p.Id] = true
	}
}

func (e *Engine) Policy() Policy { return e.policy }

func (e *Engine) Source() entity.Product { return e.members[0] }

func (e *Engine) Members() []entity.Product {
	out := make([]entity.Product, len(e.members))
	copy(out, e.members)
	return out
}

func (e *Engine) IsSelected(productId string) bool {
	return e.selected[productId]
}

// SelectedIds returns the selection in display order.
func (e *Engine) SelectedIds() []string {
	ids := make([]string, 0, len(e.selected))
	for _, p := range e.members {
		if e.selected[p.Id] {
			ids = append(ids, p.Id)
		}
	}
	return ids
}

// Toggle flips membership of productId. Unknown ids are ignored and report false.
func (e *Engine) Toggle(productId string) bool {
	if _, ok := e.index[productId]; !ok {
		return false
	}
	if e.selected[productId] {
		delete(e.selected, productId)
	} else {
		e.selected[productId] = true
	}
	return true
}

func (e *Engine) CanCommit() bool {
	return len(e.selected) > 0
}

// Totals is derived from the current selection on every call.
func (e *Engine) Totals() Totals {
	prices := make([]decimal.Decimal, 0, len(e.selected))
	currency := ""
	for _, p := range e.members {
		if !e.selected[p.Id] {
			continue
		}
		price := p.MinVariantPrice()
		if currency == "" {
			currency = price.CurrencyCode
		}
		prices = append(prices, price.Amount)
	}
	if currency == "" {
		currency = e.policy.CurrencyCode
	}
	return computeTotals(prices, e.policy.DiscountRate, currency)
}

// Commit hands one line per selected product to cart, using each product's
// first variant. Products without variants are skipped. A single success
// notification reports how many lines were actually added.
func (e *Engine) Commit(ctx context.Context, cart CartAggregator, sink NotificationSink) (CommitResult, error) {
	if !e.CanCommit() {
		return CommitResult{}, ErrEmptySelection
	}

	var result CommitResult
	for _, p := range e.members {
		if !e.selected[p.Id] {
			continue
		}
		v := p.FirstVariant()
		if v == nil {
			result.Skipped = append(result.Skipped, p.Id)
			continue
		}
		cart.AddLine(ctx, LineItem{
			Product:         p,
			VariantId:       v.Id,
			VariantTitle:    v.Title,
			UnitPrice:       v.Price,
			Quantity:        1,
			SelectedOptions: v.SelectedOptions,
		})
		result.Added++
	}

	if result.Added > 0 && sink != nil {
		sink.NotifySuccess(ctx, commitMessage, fmt.Sprintf(commitDetailFormat, result.Added))
	}
	return result, nil
}
