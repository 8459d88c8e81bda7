package compose

import (
	"fmt"
	"strings"

	"giftshop-chatbot-be/pkg/catalog"
	"giftshop-chatbot-be/pkg/store"
)

// Reply is the composed content of one outgoing bot message before the
// dialogue controller stamps an id and timestamp on it.
type Reply struct {
	Content        string
	Products       []catalog.Product
	ShowCategories bool
	Category       *catalog.Category
	Occasion       *catalog.Occasion
}

// Greeting is the canned opening message of a fresh conversation.
func Greeting() Reply {
	return Reply{Content: msgGreeting}
}

// CategoryReply builds the three-way category response: unknown category,
// empty result set, or found-N listing. The first two invite another choice
// by attaching the category chips.
func CategoryReply(category *catalog.Category, products []catalog.Product) Reply {
	if category == nil {
		return Reply{Content: msgUnknownCategory, ShowCategories: true}
	}
	if len(products) == 0 {
		return Reply{
			Content:        fmt.Sprintf(msgEmptyCategory, category.Name),
			ShowCategories: true,
			Category:       category,
		}
	}
	return Reply{
		Content:  fmt.Sprintf(msgFoundCategory, len(products), category.Name),
		Products: products,
		Category: category,
	}
}

// OccasionReply mirrors CategoryReply's found/not-found phrasing for
// occasion lookups.
func OccasionReply(occasion *catalog.Occasion, products []catalog.Product) Reply {
	if len(products) == 0 {
		return Reply{
			Content:  fmt.Sprintf(msgEmptyOccasion, occasion.Name),
			Occasion: occasion,
		}
	}
	return Reply{
		Content:  fmt.Sprintf(msgFoundOccasion, occasion.Name),
		Products: products,
		Occasion: occasion,
	}
}

// SearchReply lists name-search hits.
func SearchReply(products []catalog.Product) Reply {
	return Reply{
		Content:  fmt.Sprintf(msgFoundSearch, len(products)),
		Products: products,
	}
}

// BudgetReply lists a budget-only filtered catalog slice.
func BudgetReply(products []catalog.Product) Reply {
	if len(products) == 0 {
		return Reply{Content: msgEmptyBudget}
	}
	return Reply{Content: msgFoundBudget, Products: products}
}

// PopularReply lists the shop's popular items.
func PopularReply(products []catalog.Product) Reply {
	return Reply{Content: msgPopular, Products: products}
}

// RecommendationReply presents a recipient-driven recommendation, naming the
// collected attributes back to the user.
func RecommendationReply(recipient store.RecipientInfo, products []catalog.Product) Reply {
	content := msgRecommendation
	if desc := describeRecipient(recipient); desc != "" {
		content = fmt.Sprintf("Quà tặng cho %s đây ạ:", desc)
	}
	return Reply{Content: content, Products: products}
}

// AskRecipient is the slot-filling clarification question; repeat asks use
// extra examples.
func AskRecipient(repeat bool) Reply {
	if repeat {
		return Reply{Content: msgAskRecipientAgain}
	}
	return Reply{Content: msgAskRecipient}
}

// Fallback is the could-not-understand reply with the category chips.
func Fallback() Reply {
	return Reply{Content: msgFallback, ShowCategories: true}
}

// WithUpsell appends the gift wrapping upsell note to a non-empty listing.
func (r Reply) WithUpsell() Reply {
	if len(r.Products) == 0 {
		return r
	}
	r.Content += msgUpsell
	return r
}

func describeRecipient(r store.RecipientInfo) string {
	var parts []string
	switch r.Gender {
	case "male":
		parts = append(parts, "nam")
	case "female":
		parts = append(parts, "nữ")
	}
	if r.AgeYears > 0 {
		parts = append(parts, fmt.Sprintf("%d tuổi", r.AgeYears))
	} else {
		switch r.AgeGroup {
		case "child":
			parts = append(parts, "trẻ em")
		case "young":
			parts = append(parts, "bạn trẻ")
		case "adult":
			parts = append(parts, "người trung niên")
		case "senior":
			parts = append(parts, "người lớn tuổi")
		}
	}
	return strings.Join(parts, " ")
}
