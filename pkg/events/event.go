package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_RECOMMENDATION").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain implementation for ad-hoc events.
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

// NewRecommendationEvent describes a chat turn that produced a product
// recommendation, for downstream analytics consumers.
func NewRecommendationEvent(sessionId, userId string, productCount int) Event {
	return BaseEvent{
		Type: "CHAT_RECOMMENDATION",
		Data: map[string]interface{}{
			"session_id":    sessionId,
			"user_id":       userId,
			"product_count": productCount,
		},
		OccurredAt: time.Now(),
	}
}
