package dialog

import (
	"context"

	"giftshop-chatbot-be/pkg/chat/compose"
	"giftshop-chatbot-be/pkg/chat/detect"
	"giftshop-chatbot-be/pkg/chat/filter"
	"giftshop-chatbot-be/pkg/store"
)

// Rule 1: popularity keywords answer immediately regardless of the current
// dialogue state and never change it.
func (e *Engine) appliesPopularity(_ *store.Session, text string) bool {
	return detect.IsPopularityRequest(text)
}

func (e *Engine) handlePopularity(ctx context.Context, _ *store.Session, _ string) []compose.Reply {
	products := filter.Active(e.source.Products(ctx))
	return []compose.Reply{compose.PopularReply(products)}
}

// Rule 2: the session is slot-filling recipient attributes.
func (e *Engine) appliesAwaitingRecipient(session *store.Session, _ string) bool {
	return session.State == store.StateAwaitingRecipient
}

func (e *Engine) handleAwaitingRecipient(ctx context.Context, session *store.Session, text string) []compose.Reply {
	detected := detect.DetectRecipient(text)
	merged := session.Recipient.Merge(detected)

	if !merged.HasAny() {
		// Nothing detected and nothing stored: keep asking.
		return []compose.Reply{compose.AskRecipient(true)}
	}

	// The budget may sit in this reply or in the advise utterance that
	// opened the slot-filling ("tư vấn quà dưới 500k" ... "cho nữ").
	budget := detect.ParseBudget(text)
	if budget == nil {
		budget = detect.ParseBudget(session.LastQuery)
	}

	session.State = store.StateIdle
	session.Recipient = store.RecipientInfo{}
	session.LastQuery = ""
	return []compose.Reply{e.recommend(ctx, merged, budget)}
}

// Rule 3: explicit recommendation request. When the utterance already names
// the recipient, slot-filling is skipped entirely.
func (e *Engine) appliesAdviseRequest(_ *store.Session, text string) bool {
	return detect.IsAdviseRequest(text)
}

func (e *Engine) handleAdviseRequest(ctx context.Context, session *store.Session, text string) []compose.Reply {
	detected := detect.DetectRecipient(text)
	if detected.HasAny() {
		return []compose.Reply{e.recommend(ctx, detected, detect.ParseBudget(text))}
	}

	session.State = store.StateAwaitingRecipient
	session.Recipient = store.RecipientInfo{}
	session.LastQuery = text
	return []compose.Reply{compose.AskRecipient(false)}
}

// Rule 4: general query. Resolution priority is occasion > category >
// name-search > budget-only > fallback; a budget cue narrows whichever
// branch wins.
func (e *Engine) appliesAlways(_ *store.Session, _ string) bool {
	return true
}

func (e *Engine) handleGeneralQuery(ctx context.Context, _ *store.Session, text string) []compose.Reply {
	budget := detect.ParseBudget(text)

	if occasion := detect.MatchOccasion(text, e.source.Occasions(ctx)); occasion != nil {
		products := filter.ByBudget(filter.Active(e.source.ProductsByOccasion(ctx, occasion.Id)), budget)
		return []compose.Reply{compose.OccasionReply(occasion, products)}
	}

	if category := detect.MatchCategory(text, e.source.Categories(ctx)); category != nil {
		products := filter.ByBudget(filter.Active(e.source.ProductsByCategory(ctx, category.Id)), budget)
		reply := compose.CategoryReply(category, products)
		if len(products) > 0 && e.source.HasGiftOptions(ctx) {
			reply = reply.WithUpsell()
		}
		return []compose.Reply{reply}
	}

	if matches := detect.SearchByName(text, filter.Active(e.source.Products(ctx))); len(matches) > 0 {
		return []compose.Reply{compose.SearchReply(filter.ByBudget(matches, budget))}
	}

	if budget != nil {
		products := filter.ByBudget(filter.Active(e.source.Products(ctx)), budget)
		return []compose.Reply{compose.BudgetReply(products)}
	}

	return []compose.Reply{compose.Fallback()}
}

// recommend emits the recipient-driven recommendation: a prefix slice of the
// active catalog, narrowed by any budget. No popularity or demographic
// ranking signal is applied to the slice itself; the collected attributes
// only shape the reply copy.
func (e *Engine) recommend(ctx context.Context, recipient store.RecipientInfo, budget *detect.Budget) compose.Reply {
	products := filter.ByBudget(filter.Active(e.source.Products(ctx)), budget)
	return compose.RecommendationReply(recipient, products)
}
