package events

import "time"

const TypeCartLinesAdded = "CART_LINES_ADDED"

// Event is anything published on the storefront event bus.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// CartLinesAdded reports how many bundle lines reached a user's cart.
func CartLinesAdded(userID, message, detail string) BaseEvent {
	return BaseEvent{
		Type: TypeCartLinesAdded,
		Data: map[string]interface{}{
			"user_id": userID,
			"message": message,
			"detail":  detail,
		},
		OccurredAt: time.Now(),
	}
}
