package dialog

import (
	"context"
	"log"
	"time"

	"giftshop-chatbot-be/pkg/catalog"
	"giftshop-chatbot-be/pkg/chat/compose"
	"giftshop-chatbot-be/pkg/chat/filter"
	"giftshop-chatbot-be/pkg/store"

	"github.com/google/uuid"
)

// CatalogSource supplies the read-only reference data the engine matches
// against. Implementations degrade fetch failures to empty slices; the engine
// itself never sees an error and never panics mid-turn.
type CatalogSource interface {
	Categories(ctx context.Context) []catalog.Category
	Occasions(ctx context.Context) []catalog.Occasion
	Products(ctx context.Context) []catalog.Product
	ProductsByCategory(ctx context.Context, categoryId int64) []catalog.Product
	ProductsByOccasion(ctx context.Context, occasionId int64) []catalog.Product
	HasGiftOptions(ctx context.Context) bool
}

// TurnResult is the outcome of one handled utterance. Messages holds the
// entries appended to the session log this turn, user message first. The
// engine performs no I/O; persisting Messages is the caller's concern.
type TurnResult struct {
	Messages     []store.ChatMessage
	StateChanged bool
	Recommended  bool
}

// Engine is the dialogue controller. It owns the turn-by-turn decision
// logic as an ordered rule table; the first rule whose predicate matches
// handles the utterance. Rule order is a deliberate design decision.
type Engine struct {
	source       CatalogSource
	displayLimit int
	logger       *log.Logger
	rules        []rule
}

type rule struct {
	name    string
	applies func(session *store.Session, text string) bool
	handle  func(ctx context.Context, session *store.Session, text string) []compose.Reply
}

func NewEngine(source CatalogSource, displayLimit int, logger *log.Logger) *Engine {
	e := &Engine{
		source:       source,
		displayLimit: displayLimit,
		logger:       logger,
	}
	e.rules = []rule{
		{name: "popularity", applies: e.appliesPopularity, handle: e.handlePopularity},
		{name: "awaiting_recipient", applies: e.appliesAwaitingRecipient, handle: e.handleAwaitingRecipient},
		{name: "advise_request", applies: e.appliesAdviseRequest, handle: e.handleAdviseRequest},
		{name: "general_query", applies: e.appliesAlways, handle: e.handleGeneralQuery},
	}
	return e
}

// HandleUtterance processes one discrete turn: it appends the user message to
// the session log, dispatches through the rule table, appends the resulting
// bot messages, and reports whether the dialogue state changed.
func (e *Engine) HandleUtterance(ctx context.Context, session *store.Session, text string) *TurnResult {
	stateBefore := session.State

	userMessage := store.ChatMessage{
		Id:        uuid.NewString(),
		Role:      store.RoleUser,
		Content:   text,
		CreatedAt: time.Now(),
	}
	session.Messages = append(session.Messages, userMessage)

	var replies []compose.Reply
	for _, r := range e.rules {
		if !r.applies(session, text) {
			continue
		}
		e.logger.Printf("[DIALOG] Rule matched: %s (session=%s)", r.name, session.ID)
		replies = r.handle(ctx, session, text)
		break
	}

	result := &TurnResult{Messages: []store.ChatMessage{userMessage}}
	for _, reply := range replies {
		botMessage := e.newBotMessage(reply)
		session.Messages = append(session.Messages, botMessage)
		result.Messages = append(result.Messages, botMessage)
		if len(botMessage.Products) > 0 {
			result.Recommended = true
		}
	}
	result.StateChanged = session.State != stateBefore

	return result
}

// newBotMessage stamps a composed reply into a log entry, applying the
// display cap to the attached product list.
func (e *Engine) newBotMessage(reply compose.Reply) store.ChatMessage {
	msg := store.ChatMessage{
		Id:             uuid.NewString(),
		Role:           store.RoleBot,
		Content:        reply.Content,
		CreatedAt:      time.Now(),
		Products:       filter.Truncate(reply.Products, e.displayLimit),
		ShowCategories: reply.ShowCategories,
	}
	if reply.Category != nil {
		id := reply.Category.Id
		msg.CategoryId = &id
		msg.CategoryName = reply.Category.Name
	}
	if reply.Occasion != nil {
		id := reply.Occasion.Id
		msg.OccasionId = &id
		msg.OccasionName = reply.Occasion.Name
	}
	return msg
}

// GreetingMessage builds the canned opening entry for a fresh session.
func GreetingMessage() store.ChatMessage {
	reply := compose.Greeting()
	return store.ChatMessage{
		Id:        uuid.NewString(),
		Role:      store.RoleBot,
		Content:   reply.Content,
		CreatedAt: time.Now(),
	}
}
