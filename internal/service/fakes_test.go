package service

import (
	"context"
	"errors"
	"sync"

	"storefront-be/internal/dto"
	"storefront-be/internal/entity"
	"storefront-be/internal/repository/contract"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/pkg/bundle"
	"storefront-be/pkg/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func usd(amount string) entity.Money {
	return entity.Money{Amount: decimal.RequireFromString(amount), CurrencyCode: "USD"}
}

func product(id, handle, title, price string) entity.Product {
	return entity.Product{
		Id:               id,
		Title:            title,
		Handle:           strPtr(handle),
		Price:            usd(price),
		AvailableForSale: true,
		Variants: []entity.Variant{{
			Id:               id + "-v1",
			Title:            "Default",
			Price:            usd(price),
			AvailableForSale: true,
			SelectedOptions:  []entity.SelectedOption{{Name: "Size", Value: "M"}},
		}},
	}
}

type fakeCatalog struct {
	byHandle map[string]entity.Product
	results  map[catalog.Filter][]entity.Product
	err      error
}

func (f *fakeCatalog) Fetch(ctx context.Context, maxCount int, filter catalog.Filter) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	res := f.results[filter]
	if len(res) > maxCount {
		res = res[:maxCount]
	}
	return res, nil
}

func (f *fakeCatalog) FindByHandle(ctx context.Context, handle string) (*entity.Product, error) {
	p, ok := f.byHandle[handle]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

type recordingCart struct {
	mu    sync.Mutex
	users []uuid.UUID
	lines []bundle.LineItem
}

func (c *recordingCart) AggregatorFor(userId uuid.UUID) bundle.CartAggregator {
	return aggregatorFunc(func(ctx context.Context, line bundle.LineItem) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.users = append(c.users, userId)
		c.lines = append(c.lines, line)
	})
}

func (c *recordingCart) GetCart(ctx context.Context, userId uuid.UUID) (*dto.CartResponse, error) {
	return nil, errors.New("not implemented")
}

type aggregatorFunc func(ctx context.Context, line bundle.LineItem)

func (f aggregatorFunc) AddLine(ctx context.Context, line bundle.LineItem) { f(ctx, line) }

type sentNotification struct {
	userId  uuid.UUID
	message string
	detail  string
}

type recordingNotifications struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *recordingNotifications) SinkFor(userId uuid.UUID) bundle.NotificationSink {
	return sinkFunc(func(ctx context.Context, message, detail string) {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.sent = append(n.sent, sentNotification{userId: userId, message: message, detail: detail})
	})
}

func (n *recordingNotifications) Start() {}

type sinkFunc func(ctx context.Context, message, detail string)

func (f sinkFunc) NotifySuccess(ctx context.Context, message, detail string) { f(ctx, message, detail) }

// fakeCartRepository records merged lines in memory.
type fakeCartRepository struct {
	mu     sync.Mutex
	carts  map[uuid.UUID]*entity.Cart
	merged []*entity.CartLine
	done   chan struct{}
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{carts: map[uuid.UUID]*entity.Cart{}, done: make(chan struct{}, 16)}
}

func (r *fakeCartRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range specs {
		if byUser, ok := s.(specification.ByUserID); ok {
			return r.carts[byUser.UserID], nil
		}
	}
	return nil, nil
}

func (r *fakeCartRepository) FindOrCreateByUser(ctx context.Context, userId uuid.UUID) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[userId]
	if !ok {
		c = &entity.Cart{Id: uuid.New(), UserId: userId}
		r.carts[userId] = c
	}
	return c, nil
}

func (r *fakeCartRepository) MergeLine(ctx context.Context, line *entity.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.merged = append(r.merged, line)
	for _, c := range r.carts {
		if c.Id != line.CartId {
			continue
		}
		for _, existing := range c.Lines {
			if existing.VariantId == line.VariantId {
				existing.Quantity += line.Quantity
				existing.UnitPrice = line.UnitPrice
				r.done <- struct{}{}
				return nil
			}
		}
		c.Lines = append(c.Lines, line)
	}
	r.done <- struct{}{}
	return nil
}

type fakeUnitOfWork struct {
	carts *fakeCartRepository
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) ProductRepository() contract.ProductRepository { return nil }
func (u *fakeUnitOfWork) CartRepository() contract.CartRepository       { return u.carts }

type fakeFactory struct {
	carts *fakeCartRepository
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{carts: f.carts}
}
