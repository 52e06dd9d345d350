// FILE: internal/service/cart_service.go
// Cart reads and the publishing side of the cart line pipeline
package service

import (
	"context"
	"encoding/json"

	"storefront-be/internal/dto"
	"storefront-be/internal/mapper"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/pkg/bundle"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type ICartService interface {
	// AggregatorFor returns a cart aggregator that publishes lines for userId.
	AggregatorFor(userId uuid.UUID) bundle.CartAggregator
	GetCart(ctx context.Context, userId uuid.UUID) (*dto.CartResponse, error)
}

type cartService struct {
	publisher  message.Publisher
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCartService(
	publisher message.Publisher,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) ICartService {
	return &cartService{
		publisher:  publisher,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *cartService) AggregatorFor(userId uuid.UUID) bundle.CartAggregator {
	return &cartAggregator{service: s, userId: userId}
}

func (s *cartService) GetCart(ctx context.Context, userId uuid.UUID) (*dto.CartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cart, err := uow.CartRepository().FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.WithLines{},
	)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &dto.CartResponse{Lines: []dto.CartLineResponse{}, Subtotal: "0.00"}, nil
	}
	return mapper.ToCartResponse(cart), nil
}

func (s *cartService) publish(userId uuid.UUID, line bundle.LineItem) {
	payload := dto.CartLineMessage{
		UserId:          userId,
		ProductId:       line.Product.Id,
		ProductTitle:    line.Product.Title,
		VariantId:       line.VariantId,
		VariantTitle:    line.VariantTitle,
		UnitPrice:       line.UnitPrice.Amount.String(),
		CurrencyCode:    line.UnitPrice.CurrencyCode,
		Quantity:        line.Quantity,
		SelectedOptions: mapper.ToOptionDTOs(line.SelectedOptions),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("CART", "Failed to encode cart line", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	if err := s.publisher.Publish(s.topicName, msg); err != nil {
		s.logger.Error("CART", "Failed to publish cart line", map[string]interface{}{
			"user_id":    userId,
			"variant_id": line.VariantId,
			"error":      err.Error(),
		})
		return
	}
	s.logger.Debug("CART", "Cart line published", map[string]interface{}{
		"user_id":    userId,
		"variant_id": line.VariantId,
	})
}

type cartAggregator struct {
	service *cartService
	userId  uuid.UUID
}

func (a *cartAggregator) AddLine(ctx context.Context, line bundle.LineItem) {
	a.service.publish(a.userId, line)
}
