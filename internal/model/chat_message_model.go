package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatSessionId uuid.UUID `gorm:"type:uuid;index"`
	Role          string
	Content       string
	CategoryId    *int64
	OccasionId    *int64
	ProductCount  int
	CreatedAt     time.Time
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
