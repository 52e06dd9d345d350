package bundle

import (
	"strings"

	"storefront-be/pkg/catalog"
)

// AssociationRule maps a source product title to the catalog filter that
// selects its complementary products. Matches receives the lowercased title.
type AssociationRule struct {
	Name    string
	Matches func(title string) bool
	Filter  catalog.Filter
}

// DefaultAssociationRules is evaluated top to bottom, first match wins. The
// order matters: "Knee-High Compression Sock" must route through compression.
var DefaultAssociationRules = []AssociationRule{
	{
		Name:    "compression-to-donning",
		Matches: containsAny("compression"),
		Filter:  catalog.ProductType("Donning Sock"),
	},
	{
		Name:    "donning-to-compression",
		Matches: containsAny("donning", "sock aid"),
		Filter:  catalog.ProductType("Compression Socks"),
	},
	{
		Name:    "knee-to-ankle-or-crew",
		Matches: containsAny("knee"),
		Filter:  catalog.TitleContainsAny("ankle", "crew"),
	},
	{
		Name:    "default-available",
		Matches: func(string) bool { return true },
		Filter:  catalog.AvailableForSale(),
	},
}

type AssociationResolver struct {
	rules []AssociationRule
}

// NewAssociationResolver copies rules. A catch-all is appended when the last
// rule is not one, so resolution never comes back empty.
func NewAssociationResolver(rules []AssociationRule) *AssociationResolver {
	copied := make([]AssociationRule, 0, len(rules)+1)
	copied = append(copied, rules...)
	if len(copied) == 0 || !copied[len(copied)-1].Matches("") {
		copied = append(copied, DefaultAssociationRules[len(DefaultAssociationRules)-1])
	}
	return &AssociationResolver{rules: copied}
}

func NewDefaultAssociationResolver() *AssociationResolver {
	return NewAssociationResolver(DefaultAssociationRules)
}

// Rules returns the rules in evaluation order.
func (r *AssociationResolver) Rules() []AssociationRule {
	out := make([]AssociationRule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Rule returns the first rule matching title.
func (r *AssociationResolver) Rule(title string) AssociationRule {
	lower := strings.ToLower(title)
	for _, rule := range r.rules {
		if rule.Matches(lower) {
			return rule
		}
	}
	return r.rules[len(r.rules)-1]
}

func (r *AssociationResolver) ResolveFilter(title string) catalog.Filter {
	return r.Rule(title).Filter
}

func containsAny(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}
}
