package constant

import "time"

const (
	// MaxDisplayProducts caps how many products a single bot message carries.
	// Filtering correctness never depends on this cap.
	MaxDisplayProducts = 8

	// Conversation sessions idle out of the in-memory store after this long.
	SessionTTL = time.Hour

	// Catalog lookups are cached this long before being refetched wholesale.
	CatalogCacheTTL = 10 * time.Minute

	// Watermill topic carrying chat messages to the persistence consumer.
	ChatPersistTopicName = "CHAT_MESSAGE_PERSIST"

	// NATS event emitted when a turn produced a product recommendation.
	EventChatRecommendation = "CHAT_RECOMMENDATION"
)
