package bundle

import (
	"context"
	"testing"

	"storefront-be/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeItemEngine() *Engine {
	source := product("src", "Compression Socks - Knee High, Black", "24.99")
	candidates := []entity.Product{
		product("c1", "Donning Sock Aid", "19.99"),
		product("c2", "Donning Gloves", "14.99"),
	}
	return NewEngine(source, candidates, FrequentlyBoughtTogetherPolicy())
}

func TestEngine_StartsFullySelected(t *testing.T) {
	e := threeItemEngine()
	assert.Equal(t, []string{"src", "c1", "c2"}, e.SelectedIds())
	assert.True(t, e.CanCommit())
}

func TestEngine_TotalsFrequentlyBoughtTogether(t *testing.T) {
	totals := threeItemEngine().Totals()
	formatted := totals.Formatted()

	assert.Equal(t, "59.97", formatted.Total)
	assert.Equal(t, "50.97", formatted.Bundle)
	assert.Equal(t, "9.00", formatted.Savings)
	assert.Equal(t, "15%", formatted.DiscountRate)
	assert.Equal(t, "USD", formatted.CurrencyCode)
	assert.Equal(t, 3, totals.SelectedCount)
	assert.True(t, totals.Bundle.Equal(decimal.RequireFromString("50.9745")), "bundle is unrounded internally")
}

func TestEngine_TotalsCrossSell(t *testing.T) {
	e := NewEngine(product("a", "Compression", "30.00"), []entity.Product{product("b", "Donning", "20.00")}, CrossSellPolicy())
	f := e.Totals().Formatted()
	assert.Equal(t, "50.00", f.Total)
	assert.Equal(t, "45.00", f.Bundle)
	assert.Equal(t, "5.00", f.Savings)
}

func TestEngine_UsesMinimumVariantPrice(t *testing.T) {
	p := product("p", "Compression", "30.00")
	p.Variants = append(p.Variants, entity.Variant{Id: "p-v2", Title: "Small", Price: usd("12.50")})
	e := NewEngine(p, nil, CrossSellPolicy())
	assert.Equal(t, "12.50", FormatAmount(e.Totals().Total))
}

func TestEngine_ToggleIsIdempotentUnderDoubleToggle(t *testing.T) {
	e := threeItemEngine()
	before := e.SelectedIds()
	beforeTotals := e.Totals()

	for _, id := range []string{"src", "c1", "c2", "unknown"} {
		e.Toggle(id)
		e.Toggle(id)
		assert.Equal(t, before, e.SelectedIds(), id)
	}
	assert.True(t, beforeTotals.Total.Equal(e.Totals().Total))
}

func TestEngine_ToggleUnknownIsNoop(t *testing.T) {
	e := threeItemEngine()
	assert.False(t, e.Toggle("not-a-member"))
	assert.Len(t, e.SelectedIds(), 3)
}

func TestEngine_UnselectedContributeNothing(t *testing.T) {
	e := threeItemEngine()
	require.True(t, e.Toggle("c1"))
	f := e.Totals().Formatted()
	assert.Equal(t, "39.98", f.Total)
	assert.Equal(t, []string{"src", "c2"}, e.SelectedIds())
}

func TestEngine_BundleNeverExceedsTotal(t *testing.T) {
	e := threeItemEngine()
	ids := []string{"src", "c1", "c2", "c1", "src", "c2", "src"}
	for _, id := range ids {
		e.Toggle(id)
		totals := e.Totals()
		assert.True(t, totals.Bundle.LessThanOrEqual(totals.Total))
		assert.False(t, totals.Savings.IsNegative())
	}
}

func TestEngine_RepeatedTogglingDoesNotDrift(t *testing.T) {
	e := threeItemEngine()
	want := e.Totals()
	for i := 0; i < 1000; i++ {
		e.Toggle("c2")
	}
	got := e.Totals()
	assert.True(t, want.Total.Equal(got.Total))
	assert.True(t, want.Bundle.Equal(got.Bundle))
	assert.True(t, want.Savings.Equal(got.Savings))
}

func TestEngine_EverythingOff(t *testing.T) {
	e := threeItemEngine()
	for _, id := range []string{"src", "c1", "c2"} {
		e.Toggle(id)
	}

	assert.False(t, e.CanCommit())
	totals := e.Totals()
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.Bundle.IsZero())
	assert.True(t, totals.Savings.IsZero())
	assert.Equal(t, "USD", totals.CurrencyCode)

	cart, sink := &fakeCart{}, &fakeSink{}
	_, err := e.Commit(context.Background(), cart, sink)
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Empty(t, cart.lines)
	assert.Empty(t, sink.sent)
}

func TestEngine_CommitAddsOneLinePerSelected(t *testing.T) {
	e := threeItemEngine()
	e.Toggle("c2")
	cart, sink := &fakeCart{}, &fakeSink{}

	res, err := e.Commit(context.Background(), cart, sink)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Added)
	assert.Empty(t, res.Skipped)

	require.Len(t, cart.lines, 2)
	line := cart.lines[0]
	assert.Equal(t, "src", line.Product.Id)
	assert.Equal(t, "src-v1", line.VariantId)
	assert.Equal(t, "Default", line.VariantTitle)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "24.99", FormatAmount(line.UnitPrice.Amount))
	assert.Equal(t, []entity.SelectedOption{{Name: "Size", Value: "M"}}, line.SelectedOptions)
	assert.Equal(t, "c1", cart.lines[1].Product.Id)

	require.Len(t, sink.sent, 1)
	assert.Equal(t, "2 items added", sink.sent[0].detail)
}

func TestEngine_CommitSkipsProductsWithoutVariants(t *testing.T) {
	source := product("src", "Compression Socks", "24.99")
	noVariants := product("c1", "Donning Sock", "19.99")
	noVariants.Variants = nil
	e := NewEngine(source, []entity.Product{noVariants, product("c2", "Donning Gloves", "14.99")}, FrequentlyBoughtTogetherPolicy())

	cart, sink := &fakeCart{}, &fakeSink{}
	res, err := e.Commit(context.Background(), cart, sink)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Added)
	assert.Equal(t, []string{"c1"}, res.Skipped)
	assert.Len(t, cart.lines, 2)
	require.Len(t, sink.sent, 1)
	assert.Equal(t, "2 items added", sink.sent[0].detail)
}

func TestEngine_CommitWithNothingAddableSendsNoNotification(t *testing.T) {
	source := product("src", "Compression Socks", "24.99")
	source.Variants = nil
	e := NewEngine(source, nil, CrossSellPolicy())

	cart, sink := &fakeCart{}, &fakeSink{}
	res, err := e.Commit(context.Background(), cart, sink)
	require.NoError(t, err)
	assert.Zero(t, res.Added)
	assert.Empty(t, sink.sent)
}

func TestEngine_DuplicateMembersCollapse(t *testing.T) {
	src := product("src", "Compression", "10.00")
	e := NewEngine(src, []entity.Product{src, product("c1", "Donning", "5.00")}, CrossSellPolicy())
	assert.Len(t, e.Members(), 2)
}

func TestNewPolicy_Validation(t *testing.T) {
	_, err := NewPolicy(PolicyCrossSell, 1.0, 1, "USD")
	assert.Error(t, err)
	_, err = NewPolicy(PolicyCrossSell, -0.1, 1, "USD")
	assert.Error(t, err)
	_, err = NewPolicy(PolicyCrossSell, 0.1, 0, "USD")
	assert.Error(t, err)

	p, err := NewPolicy(PolicyCrossSell, 0, 2, "")
	require.NoError(t, err)
	assert.Equal(t, "USD", p.CurrencyCode)
}

func TestPolicySet_Get(t *testing.T) {
	set := PolicySet{
		PolicyCrossSell:                CrossSellPolicy(),
		PolicyFrequentlyBoughtTogether: FrequentlyBoughtTogetherPolicy(),
	}
	p, err := set.Get("")
	require.NoError(t, err)
	assert.Equal(t, PolicyFrequentlyBoughtTogether, p.Name)

	_, err = set.Get("bogus")
	assert.Error(t, err)
}
