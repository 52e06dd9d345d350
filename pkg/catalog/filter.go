package catalog

import (
	"fmt"
	"strings"
)

// Field names understood by the catalog query provider.
const (
	FieldProductType      = "product_type"
	FieldTitle            = "title"
	FieldAvailableForSale = "available_for_sale"
	FieldHandle           = "handle"
)

const orSeparator = " OR "

// Filter is a catalog query string made of field:value terms, optionally
// joined by OR. The bundle engine only builds and passes these.
type Filter string

type Term struct {
	Field string
	Value string
}

func (t Term) String() string {
	return t.Field + ":" + t.Value
}

func ProductType(value string) Filter {
	return Filter(Term{Field: FieldProductType, Value: value}.String())
}

func AvailableForSale() Filter {
	return Filter(Term{Field: FieldAvailableForSale, Value: "true"}.String())
}

// TitleContainsAny matches products whose title contains any of the words.
func TitleContainsAny(words ...string) Filter {
	terms := make([]Term, 0, len(words))
	for _, w := range words {
		terms = append(terms, Term{Field: FieldTitle, Value: w})
	}
	return Or(terms...)
}

func Or(terms ...Term) Filter {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		parts = append(parts, t.String())
	}
	return Filter(strings.Join(parts, orSeparator))
}

// Parse splits a filter into its OR-ed terms. Values may contain spaces
// ("product_type:Donning Sock").
func Parse(f Filter) ([]Term, error) {
	raw := strings.TrimSpace(string(f))
	if raw == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	var terms []Term
	for _, part := range strings.Split(raw, orSeparator) {
		part = strings.TrimSpace(part)
		field, value, ok := strings.Cut(part, ":")
		if !ok || field == "" || value == "" {
			return nil, fmt.Errorf("malformed filter term %q", part)
		}
		terms = append(terms, Term{
			Field: strings.ToLower(strings.TrimSpace(field)),
			Value: strings.Trim(strings.TrimSpace(value), `"`),
		})
	}
	return terms, nil
}
