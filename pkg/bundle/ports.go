package bundle

import (
	"context"
	"errors"

	"storefront-be/internal/entity"
	"storefront-be/pkg/catalog"
)

var (
	// ErrCatalogUnavailable wraps any transport or service failure of the catalog.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrEmptyCandidateSet means nothing is left to recommend after self-exclusion.
	ErrEmptyCandidateSet = errors.New("no bundle candidates")
	// ErrNoVariant marks a selected product that has nothing addable.
	ErrNoVariant = errors.New("product has no purchasable variant")
	// ErrEmptySelection is returned by Commit when nothing is selected.
	ErrEmptySelection = errors.New("bundle selection is empty")
	// ErrNotRendered is returned for operations on a view with no candidates loaded.
	ErrNotRendered = errors.New("bundle is not rendered")
	// ErrSuperseded is returned by Load when a newer Load started before this one finished.
	ErrSuperseded = errors.New("bundle load superseded")
)

// CatalogQueryProvider returns up to maxCount products matching filter.
type CatalogQueryProvider interface {
	Fetch(ctx context.Context, maxCount int, filter catalog.Filter) ([]entity.Product, error)
}

// CartAggregator merges committed lines into a persisted cart. Calls are
// fire-and-forget from the engine's point of view.
type CartAggregator interface {
	AddLine(ctx context.Context, line LineItem)
}

type NotificationSink interface {
	NotifySuccess(ctx context.Context, message, detail string)
}

type LineItem struct {
	Product         entity.Product
	VariantId       string
	VariantTitle    string
	UnitPrice       entity.Money
	Quantity        int
	SelectedOptions []entity.SelectedOption
}
