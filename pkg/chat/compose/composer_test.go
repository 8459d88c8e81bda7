package compose

import (
	"strings"
	"testing"

	"giftshop-chatbot-be/pkg/catalog"
	"giftshop-chatbot-be/pkg/store"
)

func TestCategoryReply(t *testing.T) {
	category := &catalog.Category{Id: 1, Name: "Gấu bông"}
	products := []catalog.Product{{Id: 1, Name: "Gấu bông nâu"}}

	t.Run("unknown category shows chips", func(t *testing.T) {
		reply := CategoryReply(nil, nil)
		if !reply.ShowCategories {
			t.Error("ShowCategories = false, want true")
		}
		if len(reply.Products) != 0 {
			t.Errorf("Products = %v, want empty", reply.Products)
		}
	})

	t.Run("empty category shows chips and names the category", func(t *testing.T) {
		reply := CategoryReply(category, nil)
		if !reply.ShowCategories {
			t.Error("ShowCategories = false, want true")
		}
		if !strings.Contains(reply.Content, "Gấu bông") {
			t.Errorf("Content %q does not name the category", reply.Content)
		}
		if reply.Category == nil || reply.Category.Id != 1 {
			t.Errorf("Category = %+v, want id 1", reply.Category)
		}
	})

	t.Run("found listing carries the count", func(t *testing.T) {
		reply := CategoryReply(category, products)
		if reply.ShowCategories {
			t.Error("ShowCategories = true, want false")
		}
		if !strings.Contains(reply.Content, "1 món quà") {
			t.Errorf("Content %q does not carry the count", reply.Content)
		}
		if len(reply.Products) != 1 {
			t.Errorf("Products len = %d, want 1", len(reply.Products))
		}
	})
}

func TestWithUpsell(t *testing.T) {
	category := &catalog.Category{Id: 1, Name: "Hoa"}
	products := []catalog.Product{{Id: 1, Name: "Hoa hồng sáp"}}

	base := CategoryReply(category, products)
	upsold := base.WithUpsell()
	if !strings.Contains(upsold.Content, "gói quà") {
		t.Errorf("Content %q missing the upsell note", upsold.Content)
	}

	// empty listings never get the upsell
	empty := CategoryReply(category, nil).WithUpsell()
	if strings.Contains(empty.Content, "gói quà") {
		t.Errorf("empty reply got the upsell note: %q", empty.Content)
	}
}

func TestRecommendationReply(t *testing.T) {
	tests := []struct {
		name      string
		recipient store.RecipientInfo
		wantIn    string
	}{
		{"gender and explicit age", store.RecipientInfo{Gender: "male", AgeYears: 25}, "nam 25 tuổi"},
		{"gender only", store.RecipientInfo{Gender: "female"}, "nữ"},
		{"age group only", store.RecipientInfo{AgeGroup: "child"}, "trẻ em"},
		{"senior group", store.RecipientInfo{AgeGroup: "senior"}, "người lớn tuổi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := RecommendationReply(tt.recipient, nil)
			if !strings.Contains(reply.Content, tt.wantIn) {
				t.Errorf("Content %q does not describe %q", reply.Content, tt.wantIn)
			}
		})
	}

	// no attributes falls back to the generic phrasing
	generic := RecommendationReply(store.RecipientInfo{}, nil)
	if generic.Content != msgRecommendation {
		t.Errorf("Content = %q, want the generic recommendation copy", generic.Content)
	}
}

func TestAskRecipient(t *testing.T) {
	first := AskRecipient(false)
	repeat := AskRecipient(true)
	if first.Content == repeat.Content {
		t.Error("repeat ask should differ from the first ask")
	}
}

func TestOccasionReply(t *testing.T) {
	occasion := &catalog.Occasion{Id: 1, Name: "Sinh nhật"}

	found := OccasionReply(occasion, []catalog.Product{{Id: 1}})
	if len(found.Products) != 1 || found.Occasion == nil {
		t.Errorf("found reply = %+v", found)
	}

	empty := OccasionReply(occasion, nil)
	if len(empty.Products) != 0 || !strings.Contains(empty.Content, "Sinh nhật") {
		t.Errorf("empty reply = %+v", empty)
	}
}
