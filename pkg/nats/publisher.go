package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher sends storefront events to JetStream.
type Publisher struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func NewPublisher(url string) (*Publisher, error) {
	nc, js, err := connect(url)
	if err != nil {
		return nil, err
	}
	ensureStream(js)
	return &Publisher{nc: nc, js: js}, nil
}

func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(envelope{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := SubjectPrefix + event.EventType()
	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish event to subject %s: %w", subject, err)
	}
	return nil
}

func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
