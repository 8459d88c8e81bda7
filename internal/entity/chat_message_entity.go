package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is the persisted form of a conversation log entry. Attached
// product lists are not stored; only the matched reference ids and the result
// count survive for analytics.
type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Content       string
	CategoryId    *int64
	OccasionId    *int64
	ProductCount  int
	CreatedAt     time.Time
}
