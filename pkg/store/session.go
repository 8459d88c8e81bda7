package store

import (
	"time"

	"giftshop-chatbot-be/pkg/catalog"
)

// RecipientInfo holds partially collected gift-recipient attributes while the
// conversation is slot-filling. Fields are merged turn over turn (a freshly
// detected value wins, an undetected one keeps the stored value) and are
// always reset together.
type RecipientInfo struct {
	Gender   string `json:"gender"`    // "male" | "female" | ""
	AgeYears int    `json:"age_years"` // explicit age, 0 when unknown
	AgeGroup string `json:"age_group"` // "child" | "young" | "adult" | "senior" | ""
}

func (r RecipientInfo) HasGender() bool { return r.Gender != "" }

func (r RecipientInfo) HasAge() bool { return r.AgeYears > 0 || r.AgeGroup != "" }

func (r RecipientInfo) HasAny() bool { return r.HasGender() || r.HasAge() }

// Merge overlays freshly detected fields on top of the stored ones.
func (r RecipientInfo) Merge(detected RecipientInfo) RecipientInfo {
	merged := r
	if detected.HasGender() {
		merged.Gender = detected.Gender
	}
	if detected.AgeYears > 0 {
		merged.AgeYears = detected.AgeYears
		merged.AgeGroup = ""
	} else if detected.AgeGroup != "" {
		merged.AgeGroup = detected.AgeGroup
		merged.AgeYears = 0
	}
	return merged
}

// ChatMessage is one entry of the in-memory conversation log. Messages are
// append-only: never mutated after creation, only bulk-cleared on reset.
type ChatMessage struct {
	Id             string            `json:"id"`
	Role           string            `json:"role"` // RoleUser | RoleBot
	Content        string            `json:"content"`
	CreatedAt      time.Time         `json:"created_at"`
	Products       []catalog.Product `json:"products,omitempty"`
	ShowCategories bool              `json:"show_categories,omitempty"`
	CategoryId     *int64            `json:"category_id,omitempty"`
	CategoryName   string            `json:"category_name,omitempty"`
	OccasionId     *int64            `json:"occasion_id,omitempty"`
	OccasionName   string            `json:"occasion_name,omitempty"`
}

// Session is the active conversation state held in memory. One session is
// owned by exactly one conversation; turns are never processed concurrently.
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"` // empty for guest sessions

	State     string        `json:"state"` // StateIdle | StateAwaitingRecipient
	Recipient RecipientInfo `json:"recipient"`

	Messages []ChatMessage `json:"messages"`

	// LastQuery holds the utterance that put the session into
	// AWAITING_RECIPIENT, so its budget constraint survives slot-filling.
	LastQuery string `json:"last_query"`
}

const (
	StateIdle              = "IDLE"
	StateAwaitingRecipient = "AWAITING_RECIPIENT"

	RoleUser = "user"
	RoleBot  = "bot"
)

// Reset clears the message log, the dialogue state and the recipient slots.
// Calling it on an already-clean session is a no-op.
func (s *Session) Reset() {
	s.State = StateIdle
	s.Recipient = RecipientInfo{}
	s.Messages = nil
	s.LastQuery = ""
}
