// FILE: internal/service/catalog_service.go
// Catalog reads backed by the products table
package service

import (
	"context"
	"errors"
	"fmt"

	"storefront-be/internal/entity"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/pkg/bundle"
	"storefront-be/pkg/catalog"
)

var ErrProductNotFound = errors.New("product not found")

type ICatalogService interface {
	bundle.CatalogQueryProvider
	FindByHandle(ctx context.Context, handle string) (*entity.Product, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
	}
}

// Fetch returns at most maxCount products matching filter, in catalog sort
// order. Every failure is reported as bundle.ErrCatalogUnavailable.
func (s *catalogService) Fetch(ctx context.Context, maxCount int, filter catalog.Filter) ([]entity.Product, error) {
	if maxCount < 1 {
		return nil, fmt.Errorf("%w: maxCount must be at least 1", bundle.ErrCatalogUnavailable)
	}

	match, err := specification.FromFilter(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", bundle.ErrCatalogUnavailable, err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx,
		match,
		specification.WithVariantsAndImages{},
		specification.OrderBy{Field: "sort_order"},
		specification.OrderBy{Field: "id"},
		specification.Limit{N: maxCount},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", bundle.ErrCatalogUnavailable, err)
	}
	return products, nil
}

func (s *catalogService) FindByHandle(ctx context.Context, handle string) (*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx,
		specification.ByHandle{Handle: handle},
		specification.WithVariantsAndImages{},
	)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
