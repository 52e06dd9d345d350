package bundle

import (
	"context"
	"errors"
	"fmt"

	"storefront-be/internal/entity"
)

// BuildCandidateSet asks the catalog for n+1 products so that dropping the
// source still leaves n, then excludes the source and truncates to n.
func BuildCandidateSet(ctx context.Context, provider CatalogQueryProvider, rules *AssociationResolver, source entity.Product, n int) ([]entity.Product, error) {
	if n < 1 {
		n = 1
	}
	filter := rules.ResolveFilter(source.Title)

	products, err := provider.Fetch(ctx, n+1, filter)
	if err != nil {
		if errors.Is(err, ErrCatalogUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	candidates := make([]entity.Product, 0, n)
	seen := map[string]bool{source.Id: true}
	for _, p := range products {
		if p.Id == "" || seen[p.Id] {
			continue
		}
		seen[p.Id] = true
		candidates = append(candidates, p)
		if len(candidates) == n {
			break
		}
	}

	if len(candidates) == 0 {
		return nil, ErrEmptyCandidateSet
	}
	return candidates, nil
}
