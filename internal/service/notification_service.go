package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/logger"
	"storefront-be/pkg/bundle"
	"storefront-be/pkg/events"
	pktNats "storefront-be/pkg/nats"

	"github.com/google/uuid"
)

const LevelSuccess = "success"

// NotificationDelivery pushes a notification to a connected user.
// Implemented by the websocket hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification dto.NotificationMessage)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type EventSubscriber interface {
	Subscribe(subject string, durableName string, handler pktNats.EventHandler) error
}

type INotificationService interface {
	// SinkFor returns a notification sink addressed to userId.
	SinkFor(userId uuid.UUID) bundle.NotificationSink
	Start()
}

// NotificationService routes bundle notifications through the event bus
// when one is configured and straight to the hub otherwise.
type NotificationService struct {
	publisher  EventPublisher
	subscriber EventSubscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(pub EventPublisher, sub EventSubscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		publisher:  pub,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

func (s *NotificationService) Start() {
	if s.subscriber == nil {
		s.logger.Info("NotificationService", "No event bus configured, delivering notifications directly", nil)
		return
	}

	err := s.subscriber.Subscribe(pktNats.SubjectPrefix+">", "storefront-notifications", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("NotificationService", "Notification service started", map[string]interface{}{"subject": pktNats.SubjectPrefix + ">"})
}

func (s *NotificationService) SinkFor(userId uuid.UUID) bundle.NotificationSink {
	return &notificationSink{service: s, userId: userId}
}

func (s *NotificationService) notify(ctx context.Context, userId uuid.UUID, message, detail string) {
	if s.publisher != nil {
		err := s.publisher.Publish(ctx, events.CartLinesAdded(userId.String(), message, detail))
		if err == nil {
			return
		}
		s.logger.Warn("NotificationService", "Event publish failed, delivering directly", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}
	s.deliver(userId, message, detail)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), pktNats.SubjectPrefix)
	if typeCode != events.TypeCartLinesAdded {
		s.logger.Debug("NotificationService", fmt.Sprintf("Ignoring event: %s", typeCode), nil)
		return nil
	}

	payload := event.Payload()
	rawUser, _ := payload["user_id"].(string)
	userId, err := uuid.Parse(rawUser)
	if err != nil {
		s.logger.Warn("NotificationService", "Event without a valid user", map[string]interface{}{"user_id": rawUser})
		return nil
	}

	message, _ := payload["message"].(string)
	detail, _ := payload["detail"].(string)
	s.deliver(userId, message, detail)
	return nil
}

func (s *NotificationService) deliver(userId uuid.UUID, message, detail string) {
	if s.delivery == nil {
		return
	}
	s.delivery.Send(userId, dto.NotificationMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Level:     LevelSuccess,
		Title:     message,
		Message:   detail,
		CreatedAt: time.Now(),
	})
}

type notificationSink struct {
	service *NotificationService
	userId  uuid.UUID
}

func (n *notificationSink) NotifySuccess(ctx context.Context, message, detail string) {
	n.service.notify(ctx, n.userId, message, detail)
}
