package implementation

import (
	"context"
	"errors"

	"storefront-be/internal/entity"
	"storefront-be/internal/mapper"
	"storefront-be/internal/model"
	"storefront-be/internal/repository/contract"
	"storefront-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CartMapper
}

func NewCartRepository(db *gorm.DB) contract.CartRepository {
	return &CartRepositoryImpl{
		db:     db,
		mapper: mapper.NewCartMapper(),
	}
}

func (r *CartRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CartRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Cart, error) {
	var m model.Cart
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CartRepositoryImpl) FindOrCreateByUser(ctx context.Context, userId uuid.UUID) (*entity.Cart, error) {
	m := model.Cart{Id: uuid.New(), UserId: userId}
	err := r.db.WithContext(ctx).
		Where(model.Cart{UserId: userId}).
		Attrs(model.Cart{Id: m.Id}).
		FirstOrCreate(&m).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CartRepositoryImpl) MergeLine(ctx context.Context, line *entity.CartLine) error {
	if line.Id == uuid.Nil {
		line.Id = uuid.New()
	}
	m := r.mapper.LineToModel(line)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "variant_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_lines.quantity + EXCLUDED.quantity"),
			"unit_price": gorm.Expr("EXCLUDED.unit_price"),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(m).Error
}
