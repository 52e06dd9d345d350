package bundle

import (
	"github.com/shopspring/decimal"
)

// Totals holds unrounded amounts. Rounding happens only in Formatted.
type Totals struct {
	Total         decimal.Decimal
	Bundle        decimal.Decimal
	Savings       decimal.Decimal
	DiscountRate  decimal.Decimal
	CurrencyCode  string
	SelectedCount int
}

type FormattedTotals struct {
	Total        string `json:"total"`
	Bundle       string `json:"bundle"`
	Savings      string `json:"savings"`
	DiscountRate string `json:"discount_rate"`
	CurrencyCode string `json:"currency_code"`
}

func (t Totals) Formatted() FormattedTotals {
	return FormattedTotals{
		Total:        FormatAmount(t.Total),
		Bundle:       FormatAmount(t.Bundle),
		Savings:      FormatAmount(t.Savings),
		DiscountRate: t.DiscountRate.Shift(2).StringFixed(0) + "%",
		CurrencyCode: t.CurrencyCode,
	}
}

// FormatAmount rounds to minor-unit precision (half away from zero).
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func computeTotals(prices []decimal.Decimal, rate decimal.Decimal, currency string) Totals {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p)
	}
	bundle := total.Mul(decimal.NewFromInt(1).Sub(rate))
	return Totals{
		Total:         total,
		Bundle:        bundle,
		Savings:       total.Sub(bundle),
		DiscountRate:  rate,
		CurrencyCode:  currency,
		SelectedCount: len(prices),
	}
}
