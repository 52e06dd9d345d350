package contract

import (
	"context"

	"storefront-be/internal/entity"
	"storefront-be/internal/repository/specification"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
