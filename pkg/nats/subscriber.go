package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"storefront-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

type EventHandler func(ctx context.Context, event events.Event) error

// Subscriber consumes storefront events through durable JetStream consumers.
type Subscriber struct {
	nc       *nats.Conn
	js       jetstream.JetStream
	contexts []jetstream.ConsumeContext
}

func NewSubscriber(url string) (*Subscriber, error) {
	nc, js, err := connect(url)
	if err != nil {
		return nil, err
	}
	ensureStream(js)
	return &Subscriber{nc: nc, js: js}, nil
}

// Subscribe registers handler on subject. A handler error naks the message
// so JetStream redelivers it.
func (s *Subscriber) Subscribe(subject string, durableName string, handler EventHandler) error {
	ctx := context.Background()

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, StreamName, jetstream.ConsumerConfig{
		Durable:       durableName,
		FilterSubject: subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		event, err := decode(msg.Subject(), msg.Data())
		if err != nil {
			log.Printf("[ERROR] Dropping undecodable event on %s: %v", msg.Subject(), err)
			_ = msg.Term()
			return
		}

		if err := handler(context.Background(), event); err != nil {
			log.Printf("[ERROR] Handler failed for event %s: %v", msg.Subject(), err)
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}
	s.contexts = append(s.contexts, cc)

	log.Printf("[INFO] Subscribed to %s with durable %s", subject, durableName)
	return nil
}

func (s *Subscriber) Close() {
	for _, cc := range s.contexts {
		cc.Stop()
	}
	if s.nc != nil {
		s.nc.Close()
	}
}

func decode(subject string, data []byte) (events.BaseEvent, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return events.BaseEvent{}, err
	}
	if env.Type == "" {
		env.Type = strings.TrimPrefix(subject, SubjectPrefix)
	}
	return events.BaseEvent{Type: env.Type, Data: env.Data, OccurredAt: env.OccurredAt}, nil
}
