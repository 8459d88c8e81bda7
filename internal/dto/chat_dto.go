package dto

import (
	"time"

	"giftshop-chatbot-be/pkg/catalog"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	// Empty session id starts a new conversation.
	SessionId string `json:"session_id"`
	Chat      string `json:"chat" validate:"required,max=500"`
}

type ChatMessageDTO struct {
	Id             string            `json:"id"`
	Role           string            `json:"role"`
	Content        string            `json:"content"`
	CreatedAt      time.Time         `json:"created_at"`
	Products       []catalog.Product `json:"products,omitempty"`
	ShowCategories bool              `json:"show_categories,omitempty"`
	CategoryId     *int64            `json:"category_id,omitempty"`
	CategoryName   string            `json:"category_name,omitempty"`
	OccasionId     *int64            `json:"occasion_id,omitempty"`
	OccasionName   string            `json:"occasion_name,omitempty"`
}

type SendMessageResponse struct {
	SessionId    string           `json:"session_id"`
	State        string           `json:"state"`
	StateChanged bool             `json:"state_changed"`
	Messages     []ChatMessageDTO `json:"messages"`
}

type ResetConversationRequest struct {
	SessionId string `json:"session_id" validate:"required"`
}

// AnnounceRequest carries a storefront announcement pushed to every
// connected widget.
type AnnounceRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

// HistoryFilter narrows the history listing. Zero values leave the listing
// unfiltered.
type HistoryFilter struct {
	Role   string
	Limit  int
	Offset int
}

type GetChatHistoryResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PersistChatPayload is the watermill message carrying one turn's log
// entries to the persistence consumer.
type PersistChatPayload struct {
	SessionId string           `json:"session_id"`
	UserId    uuid.UUID        `json:"user_id"`
	Title     string           `json:"title"`
	Messages  []PersistMessage `json:"messages"`
}

type PersistMessage struct {
	Id           string    `json:"id"`
	Role         string    `json:"role"`
	Content      string    `json:"content"`
	CategoryId   *int64    `json:"category_id,omitempty"`
	OccasionId   *int64    `json:"occasion_id,omitempty"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}
