package contract

import (
	"context"

	"storefront-be/internal/entity"
	"storefront-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CartRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Cart, error)
	FindOrCreateByUser(ctx context.Context, userId uuid.UUID) (*entity.Cart, error)
	// MergeLine inserts the line or, when the cart already holds the
	// variant, adds its quantity and refreshes the unit price.
	MergeLine(ctx context.Context, line *entity.CartLine) error
}
