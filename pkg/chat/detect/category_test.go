package detect

import (
	"testing"

	"giftshop-chatbot-be/pkg/catalog"
)

var testCategories = []catalog.Category{
	{Id: 1, Name: "Gấu bông"},
	{Id: 2, Name: "Hoa"},
	{Id: 3, Name: "Đồ trang sức"},
}

func TestMatchCategory(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantId int64 // 0 means no match
	}{
		{"exact name", "gấu bông", 1},
		{"name inside utterance", "tôi muốn mua gấu bông", 1},
		{"utterance inside name", "trang sức", 3},
		{"single word category", "mua hoa tặng mẹ", 2},
		{"no match", "bàn phím cơ", 0},
		{"empty text", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchCategory(tt.text, testCategories)
			if tt.wantId == 0 {
				if got != nil {
					t.Fatalf("MatchCategory(%q) = %+v, want nil", tt.text, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("MatchCategory(%q) = nil, want id %d", tt.text, tt.wantId)
			}
			if got.Id != tt.wantId {
				t.Errorf("MatchCategory(%q).Id = %d, want %d", tt.text, got.Id, tt.wantId)
			}
		})
	}

	if got := MatchCategory("hoa", nil); got != nil {
		t.Errorf("MatchCategory with empty list = %+v, want nil", got)
	}
}

func TestMatchOccasion(t *testing.T) {
	occasions := []catalog.Occasion{
		{Id: 1, Name: "Sinh nhật"},
		{Id: 2, Name: "Valentine"},
	}

	if got := MatchOccasion("quà sinh nhật cho mẹ", occasions); got == nil || got.Id != 1 {
		t.Errorf("MatchOccasion(sinh nhật) = %+v, want id 1", got)
	}
	if got := MatchOccasion("valentine", occasions); got == nil || got.Id != 2 {
		t.Errorf("MatchOccasion(valentine) = %+v, want id 2", got)
	}
	if got := MatchOccasion("quà tốt nghiệp", occasions); got != nil {
		t.Errorf("MatchOccasion(no match) = %+v, want nil", got)
	}
}

func TestSearchByName(t *testing.T) {
	products := []catalog.Product{
		{Id: 1, Name: "Gấu bông nâu", ShortDescription: "Gấu teddy mềm mại"},
		{Id: 2, Name: "Hoa hồng sáp", ShortDescription: "Bó hoa vĩnh cửu"},
		{Id: 3, Name: "Ly sứ đôi"},
	}

	got := SearchByName("gấu bông", products)
	if len(got) != 1 || got[0].Id != 1 {
		t.Errorf("SearchByName(gấu bông) = %+v, want product 1", got)
	}

	// full product name inside a longer utterance
	got = SearchByName("tìm gấu bông nâu giá rẻ", products)
	if len(got) != 1 || got[0].Id != 1 {
		t.Errorf("SearchByName(long utterance) = %+v, want product 1", got)
	}

	// description match
	got = SearchByName("teddy", products)
	if len(got) != 1 || got[0].Id != 1 {
		t.Errorf("SearchByName(teddy) = %+v, want product 1", got)
	}

	if got = SearchByName("máy ảnh", products); got != nil {
		t.Errorf("SearchByName(no match) = %+v, want nil", got)
	}

	if got = SearchByName("", products); got != nil {
		t.Errorf("SearchByName(empty) = %+v, want nil", got)
	}
}

func TestIntentDetection(t *testing.T) {
	popular := []string{
		"sản phẩm bán chạy",
		"món quà nào đang hot",
		"show me your best seller",
	}
	for _, text := range popular {
		if !IsPopularityRequest(text) {
			t.Errorf("IsPopularityRequest(%q) = false, want true", text)
		}
	}

	advise := []string{
		"tư vấn quà giúp mình",
		"tìm quà cho nam 25 tuổi",
		"can you suggest a gift",
	}
	for _, text := range advise {
		if !IsAdviseRequest(text) {
			t.Errorf("IsAdviseRequest(%q) = false, want true", text)
		}
	}

	if IsPopularityRequest("quà sinh nhật") {
		t.Error("IsPopularityRequest(quà sinh nhật) = true, want false")
	}
	if IsAdviseRequest("hoa hồng") {
		t.Error("IsAdviseRequest(hoa hồng) = true, want false")
	}
}
