package specification

import (
	"fmt"
	"strconv"
	"strings"

	"storefront-be/pkg/catalog"

	"gorm.io/gorm"
)

type ByHandle struct {
	Handle string
}

func (s ByHandle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("handle = ?", s.Handle)
}

// WithVariantsAndImages preloads the ordered child collections.
type WithVariantsAndImages struct{}

func (s WithVariantsAndImages) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Variants", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Preload("Images", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") })
}

// MatchesFilter translates a catalog filter expression into a grouped OR
// condition over the products table.
type MatchesFilter struct {
	clause string
	args   []interface{}
}

func (s MatchesFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(s.clause, s.args...)
}

func FromFilter(f catalog.Filter) (MatchesFilter, error) {
	terms, err := catalog.Parse(f)
	if err != nil {
		return MatchesFilter{}, err
	}

	clauses := make([]string, 0, len(terms))
	var args []interface{}
	for _, t := range terms {
		clause, arg, err := termClause(t)
		if err != nil {
			return MatchesFilter{}, err
		}
		clauses = append(clauses, clause)
		args = append(args, arg)
	}
	return MatchesFilter{
		clause: "(" + strings.Join(clauses, " OR ") + ")",
		args:   args,
	}, nil
}

func termClause(t catalog.Term) (string, interface{}, error) {
	switch t.Field {
	case catalog.FieldProductType:
		return "LOWER(product_type) = ?", strings.ToLower(t.Value), nil
	case catalog.FieldTitle:
		return "LOWER(title) LIKE ?", "%" + strings.ToLower(t.Value) + "%", nil
	case catalog.FieldHandle:
		return "handle = ?", t.Value, nil
	case catalog.FieldAvailableForSale:
		b, err := strconv.ParseBool(t.Value)
		if err != nil {
			return "", nil, fmt.Errorf("available_for_sale expects a boolean, got %q", t.Value)
		}
		return "available_for_sale = ?", b, nil
	default:
		return "", nil, fmt.Errorf("unsupported filter field %q", t.Field)
	}
}
