package detect

import (
	"testing"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantNil  bool
		wantKind BudgetKind
		wantMin  int64
		wantMax  int64
	}{
		{
			name:     "under with k suffix",
			text:     "quà dưới 500k",
			wantKind: BudgetMax,
			wantMax:  500_000,
		},
		{
			name:     "under in english",
			text:     "gifts under 200k",
			wantKind: BudgetMax,
			wantMax:  200_000,
		},
		{
			name:     "over a million",
			text:     "quà trên 1 triệu",
			wantKind: BudgetMin,
			wantMin:  1_000_000,
		},
		{
			name:     "over in english",
			text:     "something over 1 million",
			wantKind: BudgetMin,
			wantMin:  1_000_000,
		},
		{
			name:     "about widens into a range",
			text:     "khoảng 300k",
			wantKind: BudgetRange,
			wantMin:  210_000,
			wantMax:  390_000,
		},
		{
			name:     "explicit range from two amounts",
			text:     "từ 200k đến 500k",
			wantKind: BudgetRange,
			wantMin:  200_000,
			wantMax:  500_000,
		},
		{
			name:     "reversed range is sorted",
			text:     "500k - 200k",
			wantKind: BudgetRange,
			wantMin:  200_000,
			wantMax:  500_000,
		},
		{
			name:     "decimal comma with trieu",
			text:     "tối đa 1,5 triệu",
			wantKind: BudgetMax,
			wantMax:  1_500_000,
		},
		{
			name:     "dot thousands separator",
			text:     "dưới 500.000 đ",
			wantKind: BudgetMax,
			wantMax:  500_000,
		},
		{
			name:    "bare amount without cue is not a budget",
			text:    "500k",
			wantNil: true,
		},
		{
			name:    "two bare amounts without a range marker are not a budget",
			text:    "quà 200k 500k",
			wantNil: true,
		},
		{
			name:    "womens day date is not a budget",
			text:    "quà 20/10",
			wantNil: true,
		},
		{
			name:    "march 8 date is not a budget",
			text:    "quà tặng ngày 8/3 cho mẹ",
			wantNil: true,
		},
		{
			name:    "teachers day date with full year is not a budget",
			text:    "quà 20/11/2025",
			wantNil: true,
		},
		{
			name:     "date alongside a real cue keeps the real amount",
			text:     "quà 20/10 dưới 500k",
			wantKind: BudgetMax,
			wantMax:  500_000,
		},
		{
			name:    "age is not an amount",
			text:    "quà cho nam trên 25 tuổi",
			wantNil: true,
		},
		{
			name:    "no numbers at all",
			text:    "quà sinh nhật cho mẹ",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBudget(tt.text)

			if tt.wantNil {
				if got != nil {
					t.Fatalf("ParseBudget(%q) = %+v, want nil", tt.text, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseBudget(%q) = nil, want %s", tt.text, tt.wantKind)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", got.Kind, tt.wantKind)
			}
			if got.Min != tt.wantMin {
				t.Errorf("Min = %d, want %d", got.Min, tt.wantMin)
			}
			if got.Max != tt.wantMax {
				t.Errorf("Max = %d, want %d", got.Max, tt.wantMax)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"500", 500, true},
		{"1,5", 1.5, true},
		{"500.000", 500_000, true},
		{"1.500.000", 1_500_000, true},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseNumber(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseNumber(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}
