package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-be/internal/dto"
	"storefront-be/internal/entity"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/repository/memory"
	"storefront-be/pkg/bundle"
	"storefront-be/pkg/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bundleFixture struct {
	svc           IBundleService
	catalog       *fakeCatalog
	cart          *recordingCart
	notifications *recordingNotifications
}

func newBundleFixture(t *testing.T) *bundleFixture {
	t.Helper()

	rules := bundle.NewDefaultAssociationResolver()
	knee := product("p-knee", "compression-knee-high", "Compression Knee High", "24.99")
	aid := product("p-aid", "donning-aid", "Donning Aid", "19.99")
	butler := product("p-butler", "sock-butler", "Donning Butler", "14.99")
	crew := product("p-crew", "crew-sock", "Crew Sock", "12.00")

	cat := &fakeCatalog{
		byHandle: map[string]entity.Product{
			"compression-knee-high": knee,
			"donning-aid":           aid,
		},
		results: map[catalog.Filter][]entity.Product{
			rules.ResolveFilter(knee.Title): {knee, aid, butler},
			rules.ResolveFilter(aid.Title):  {crew, aid},
		},
	}
	cart := &recordingCart{}
	notes := &recordingNotifications{}

	svc := NewBundleService(
		cat,
		bundle.PolicySet{
			bundle.PolicyCrossSell:                bundle.CrossSellPolicy(),
			bundle.PolicyFrequentlyBoughtTogether: bundle.FrequentlyBoughtTogetherPolicy(),
		},
		rules,
		bundle.NewDefaultImageResolver(),
		memory.NewSessionRepository(time.Minute),
		cart,
		notes,
		logger.NewNopLogger(),
	)
	return &bundleFixture{svc: svc, catalog: cat, cart: cart, notifications: notes}
}

func itemIds(res *dto.BundleResponse) []string {
	ids := make([]string, 0, len(res.Items))
	for _, it := range res.Items {
		ids = append(ids, it.Id)
	}
	return ids
}

func TestBundleService_CreateDefaultsToFrequentlyBoughtTogether(t *testing.T) {
	f := newBundleFixture(t)

	res, err := f.svc.Create(context.Background(), &dto.CreateBundleRequest{ProductHandle: "compression-knee-high"})
	require.NoError(t, err)

	assert.True(t, res.Rendered)
	assert.Equal(t, string(bundle.PolicyFrequentlyBoughtTogether), res.Policy)
	assert.Equal(t, []string{"p-knee", "p-aid", "p-butler"}, itemIds(res))
	assert.Equal(t, "59.97", res.Totals.Total)
	assert.Equal(t, "50.97", res.Totals.Bundle)
	assert.Equal(t, "9.00", res.Totals.Savings)
	assert.Equal(t, "15%", res.Totals.DiscountRate)
	assert.True(t, res.CanCommit)
	for _, it := range res.Items {
		assert.True(t, it.Selected)
		assert.NotEmpty(t, it.Image.URL)
	}
}

func TestBundleService_CrossSellShowsOneCandidate(t *testing.T) {
	f := newBundleFixture(t)

	res, err := f.svc.Create(context.Background(), &dto.CreateBundleRequest{
		ProductHandle: "compression-knee-high",
		Policy:        string(bundle.PolicyCrossSell),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"p-knee", "p-aid"}, itemIds(res))
	assert.Equal(t, "44.98", res.Totals.Total)
	assert.Equal(t, "10%", res.Totals.DiscountRate)
}

func TestBundleService_CreateUnknownProduct(t *testing.T) {
	f := newBundleFixture(t)

	_, err := f.svc.Create(context.Background(), &dto.CreateBundleRequest{ProductHandle: "missing"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestBundleService_CatalogFailureHidesBundle(t *testing.T) {
	f := newBundleFixture(t)
	f.catalog.err = errors.New("connection refused")

	res, err := f.svc.Create(context.Background(), &dto.CreateBundleRequest{ProductHandle: "compression-knee-high"})
	require.NoError(t, err)
	assert.False(t, res.Rendered)
	assert.False(t, res.CanCommit)
	assert.Empty(t, res.Items)
}

func TestBundleService_ToggleUpdatesTotals(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, &dto.CreateBundleRequest{ProductHandle: "compression-knee-high"})
	require.NoError(t, err)

	res, err := f.svc.Toggle(ctx, created.Id, &dto.ToggleBundleItemRequest{ProductId: "p-butler"})
	require.NoError(t, err)
	assert.Equal(t, "44.98", res.Totals.Total)
	assert.Equal(t, 2, res.Totals.SelectedCount)

	res, err = f.svc.Toggle(ctx, created.Id, &dto.ToggleBundleItemRequest{ProductId: "unknown"})
	require.NoError(t, err)
	assert.Equal(t, "44.98", res.Totals.Total)

	res, err = f.svc.Toggle(ctx, created.Id, &dto.ToggleBundleItemRequest{ProductId: "p-butler"})
	require.NoError(t, err)
	assert.Equal(t, "59.97", res.Totals.Total)
}

func TestBundleService_ChangeSourceResetsSelection(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, &dto.CreateBundleRequest{ProductHandle: "compression-knee-high"})
	require.NoError(t, err)
	_, err = f.svc.Toggle(ctx, created.Id, &dto.ToggleBundleItemRequest{ProductId: "p-aid"})
	require.NoError(t, err)

	res, err := f.svc.ChangeSource(ctx, created.Id, &dto.ChangeBundleSourceRequest{ProductHandle: "donning-aid"})
	require.NoError(t, err)

	assert.Equal(t, "p-aid", res.SourceId)
	assert.Equal(t, []string{"p-aid", "p-crew"}, itemIds(res))
	for _, it := range res.Items {
		assert.True(t, it.Selected)
	}
}

func TestBundleService_CommitAddsLinesAndNotifies(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()
	user := uuid.New()

	created, err := f.svc.Create(ctx, &dto.CreateBundleRequest{ProductHandle: "compression-knee-high"})
	require.NoError(t, err)
	_, err = f.svc.Toggle(ctx, created.Id, &dto.ToggleBundleItemRequest{ProductId: "p-aid"})
	require.NoError(t, err)

	res, err := f.svc.Commit(ctx, created.Id, user)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Added)
	assert.Empty(t, res.Skipped)

	require.Len(t, f.cart.lines, 2)
	assert.Equal(t, "p-knee-v1", f.cart.lines[0].VariantId)
	assert.Equal(t, "p-butler-v1", f.cart.lines[1].VariantId)
	assert.Equal(t, 1, f.cart.lines[0].Quantity)
	assert.Equal(t, []uuid.UUID{user, user}, f.cart.users)

	require.Len(t, f.notifications.sent, 1)
	assert.Equal(t, user, f.notifications.sent[0].userId)
	assert.Equal(t, "2 items added", f.notifications.sent[0].detail)
}

func TestBundleService_CommitEmptySelection(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, &dto.CreateBundleRequest{
		ProductHandle: "compression-knee-high",
		Policy:        string(bundle.PolicyCrossSell),
	})
	require.NoError(t, err)
	for _, id := range []string{"p-knee", "p-aid"} {
		_, err = f.svc.Toggle(ctx, created.Id, &dto.ToggleBundleItemRequest{ProductId: id})
		require.NoError(t, err)
	}

	_, err = f.svc.Commit(ctx, created.Id, uuid.New())
	assert.ErrorIs(t, err, bundle.ErrEmptySelection)
	assert.Empty(t, f.cart.lines)
	assert.Empty(t, f.notifications.sent)
}

func TestBundleService_UnknownBundle(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	_, err := f.svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrBundleNotFound)

	_, err = f.svc.Commit(ctx, "nope", uuid.New())
	assert.ErrorIs(t, err, ErrBundleNotFound)

	_, err = f.svc.Subscribe("nope", func(*dto.BundleResponse) {})
	assert.ErrorIs(t, err, ErrBundleNotFound)
}

func TestBundleService_SubscribeReceivesToggles(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, &dto.CreateBundleRequest{ProductHandle: "compression-knee-high"})
	require.NoError(t, err)

	var seen []*dto.BundleResponse
	unsubscribe, err := f.svc.Subscribe(created.Id, func(r *dto.BundleResponse) { seen = append(seen, r) })
	require.NoError(t, err)

	_, err = f.svc.Toggle(ctx, created.Id, &dto.ToggleBundleItemRequest{ProductId: "p-aid"})
	require.NoError(t, err)
	unsubscribe()
	_, err = f.svc.Toggle(ctx, created.Id, &dto.ToggleBundleItemRequest{ProductId: "p-aid"})
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, created.Id, seen[0].Id)
	assert.Equal(t, "39.98", seen[0].Totals.Total)
}
