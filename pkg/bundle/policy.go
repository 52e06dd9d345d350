package bundle

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type PolicyName string

var ErrUnknownPolicy = errors.New("unknown bundle policy")

const (
	PolicyCrossSell                PolicyName = "cross_sell"
	PolicyFrequentlyBoughtTogether PolicyName = "frequently_bought_together"
)

// Policy fixes how many candidates a bundle shows and the discount applied
// to its selected total.
type Policy struct {
	Name           PolicyName
	DiscountRate   decimal.Decimal
	CandidateCount int
	CurrencyCode   string
}

func NewPolicy(name PolicyName, rate float64, candidates int, currency string) (Policy, error) {
	d := decimal.NewFromFloat(rate)
	if d.IsNegative() || d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return Policy{}, fmt.Errorf("policy %s: discount rate %v outside [0,1)", name, rate)
	}
	if candidates < 1 {
		return Policy{}, fmt.Errorf("policy %s: candidate count must be at least 1", name)
	}
	if currency == "" {
		currency = "USD"
	}
	return Policy{Name: name, DiscountRate: d, CandidateCount: candidates, CurrencyCode: currency}, nil
}

// CrossSellPolicy is the two-item bundle: source plus one candidate, 10% off.
func CrossSellPolicy() Policy {
	p, _ := NewPolicy(PolicyCrossSell, 0.10, 1, "USD")
	return p
}

// FrequentlyBoughtTogetherPolicy is source plus two candidates, 15% off.
func FrequentlyBoughtTogetherPolicy() Policy {
	p, _ := NewPolicy(PolicyFrequentlyBoughtTogether, 0.15, 2, "USD")
	return p
}

type PolicySet map[PolicyName]Policy

func (s PolicySet) Get(name PolicyName) (Policy, error) {
	if name == "" {
		name = PolicyFrequentlyBoughtTogether
	}
	p, ok := s[name]
	if !ok {
		return Policy{}, fmt.Errorf("%w %q", ErrUnknownPolicy, name)
	}
	return p, nil
}
