package detect

import (
	"regexp"
	"strconv"
	"strings"
)

// BudgetKind distinguishes the three recognized budget shapes.
type BudgetKind string

const (
	BudgetMax   BudgetKind = "max"
	BudgetMin   BudgetKind = "min"
	BudgetRange BudgetKind = "range"
)

// Budget is a transient per-utterance value. Amounts are absolute VND.
type Budget struct {
	Kind BudgetKind
	Min  int64
	Max  int64
}

// aboutTolerance widens "khoảng X" into [X*(1-t), X*(1+t)].
const aboutTolerance = 0.3

var (
	maxCues = []string{
		"dưới", "duoi", "under", "below", "không quá", "khong qua",
		"tối đa", "toi da", "less than", "at most",
	}
	minCues = []string{
		"trên", "tren", "over", "above", "hơn", "more than", "at least",
		"tối thiểu", "toi thieu",
	}
	aboutCues = []string{
		"khoảng", "khoang", "tầm", "tam", "about", "around", "approximately",
	}
	rangeCues = []string{
		"từ", "tu", "đến", "den", "tới",
	}

	// 200k - 500k, 200 ~ 500k
	rangeSepRe = regexp.MustCompile(`\d[\p{L}]*\s*[-–—~]\s*\d`)

	// 20/10, 8/3, 20/11/2025 — gift-day dates, never prices.
	dateRe = regexp.MustCompile(`\b\d{1,2}(?:\s*/\s*\d{1,4})+\b`)

	// 500k, 1,5 triệu, 300 nghìn, 2tr, 1 million, 500.000
	amountRe = regexp.MustCompile(`(\d+(?:[.,]\d+)*)\s*(k\b|nghìn|nghin|ngàn|ngan|triệu|trieu|tr\b|million|m\b|đ\b|vnd\b|d\b|tuổi|tuoi|years?\b)?`)
)

// ParseBudget extracts a budget constraint from free text. It recognizes an
// upper bound, a lower bound, and a range ("about X", or two amounts joined
// by a range marker). Returns nil when no budget cue is present; bare
// numbers with no cue are not treated as a budget.
func ParseBudget(text string) *Budget {
	text = Normalize(text)

	amounts := extractAmounts(dateRe.ReplaceAllString(text, " "))
	if len(amounts) == 0 {
		return nil
	}

	// Two amounts read as a range only with an explicit range marker
	// ("từ 200k đến 500k", "200k - 500k"). Without one the first amount
	// falls through to the single-amount cues below, so number pairs in
	// ordinary text never turn into a phantom budget.
	if len(amounts) >= 2 && hasRangeMarker(text) {
		lo, hi := amounts[0], amounts[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		return &Budget{Kind: BudgetRange, Min: lo, Max: hi}
	}

	amount := amounts[0]
	switch {
	case containsAnyWord(text, maxCues) != "":
		return &Budget{Kind: BudgetMax, Max: amount}
	case containsAnyWord(text, minCues) != "":
		return &Budget{Kind: BudgetMin, Min: amount}
	case containsAnyWord(text, aboutCues) != "":
		return &Budget{
			Kind: BudgetRange,
			Min:  int64(float64(amount) * (1 - aboutTolerance)),
			Max:  int64(float64(amount) * (1 + aboutTolerance)),
		}
	}
	return nil
}

func hasRangeMarker(text string) bool {
	if rangeSepRe.MatchString(text) {
		return true
	}
	return containsAnyWord(text, rangeCues) != ""
}

// extractAmounts returns all monetary amounts in the text, normalized to VND.
// Amounts carrying an age unit ("25 tuổi") are skipped so recipient ages are
// never mistaken for prices.
func extractAmounts(text string) []int64 {
	var amounts []int64
	for _, m := range amountRe.FindAllStringSubmatch(text, -1) {
		value, ok := parseNumber(m[1])
		if !ok {
			continue
		}
		unit := strings.TrimSpace(m[2])
		switch unit {
		case "tuổi", "tuoi", "year", "years":
			continue
		case "k", "nghìn", "nghin", "ngàn", "ngan":
			value *= 1_000
		case "triệu", "trieu", "tr", "million", "m":
			value *= 1_000_000
		case "đ", "vnd", "d", "":
			// already absolute
		}
		if value > 0 {
			amounts = append(amounts, int64(value))
		}
	}
	return amounts
}

// parseNumber handles "500", "1,5" (decimal comma) and "500.000" (dot as
// thousands separator).
func parseNumber(raw string) (float64, bool) {
	if thousandsRe.MatchString(raw) {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", "")
	} else {
		raw = strings.ReplaceAll(raw, ",", ".")
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

var thousandsRe = regexp.MustCompile(`^\d{1,3}([.,]\d{3})+$`)
