// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"storefront-be/internal/dto"
	"storefront-be/internal/entity"
	"storefront-be/internal/mapper"
	"storefront-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/shopspring/decimal"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService merges published cart lines into the owner's cart.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.CartLineMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal cart line: %v", err)
		msg.Ack() // malformed payloads never succeed
		return
	}

	unitPrice, err := decimal.NewFromString(payload.UnitPrice)
	if err != nil || payload.VariantId == "" || payload.Quantity < 1 {
		log.Printf("[ERROR] Rejecting cart line for variant %q: price=%q quantity=%d", payload.VariantId, payload.UnitPrice, payload.Quantity)
		msg.Ack()
		return
	}

	log.Printf("[INFO] Merging variant %s into cart of user %s", payload.VariantId, payload.UserId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	cart, err := uow.CartRepository().FindOrCreateByUser(ctx, payload.UserId)
	if err != nil {
		log.Printf("[ERROR] Failed to load cart for user %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}

	line := &entity.CartLine{
		CartId:          cart.Id,
		ProductId:       payload.ProductId,
		ProductTitle:    payload.ProductTitle,
		VariantId:       payload.VariantId,
		VariantTitle:    payload.VariantTitle,
		UnitPrice:       unitPrice,
		CurrencyCode:    payload.CurrencyCode,
		Quantity:        payload.Quantity,
		SelectedOptions: mapper.FromOptionDTOs(payload.SelectedOptions),
	}
	if err := uow.CartRepository().MergeLine(ctx, line); err != nil {
		log.Printf("[ERROR] Failed to merge cart line: %v", err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Cart %s now holds variant %s", cart.Id, payload.VariantId)
	msg.Ack()
}
