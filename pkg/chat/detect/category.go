package detect

import (
	"strings"
	"unicode/utf8"

	"giftshop-chatbot-be/pkg/catalog"
)

// MatchCategory resolves an utterance against the category reference list.
// Matching passes, in order: exact name match, bidirectional containment,
// then a token fallback where any whitespace token of length >= 2 is checked
// for containment against the name. No fuzzy matching. Returns nil when the
// list is empty or nothing matches.
func MatchCategory(text string, categories []catalog.Category) *catalog.Category {
	text = Normalize(text)
	if text == "" || len(categories) == 0 {
		return nil
	}

	for i := range categories {
		if Normalize(categories[i].Name) == text {
			return &categories[i]
		}
	}

	for i := range categories {
		name := Normalize(categories[i].Name)
		if name == "" {
			continue
		}
		if strings.Contains(text, name) || strings.Contains(name, text) {
			return &categories[i]
		}
	}

	for _, token := range tokenize(text) {
		if utf8.RuneCountInString(token) < 2 {
			continue
		}
		for i := range categories {
			name := Normalize(categories[i].Name)
			if name == "" {
				continue
			}
			if strings.Contains(name, token) || strings.Contains(token, name) {
				return &categories[i]
			}
		}
	}

	return nil
}

// MatchOccasion uses the same bidirectional-containment strategy as the
// category detector but without the token fallback pass.
func MatchOccasion(text string, occasions []catalog.Occasion) *catalog.Occasion {
	text = Normalize(text)
	if text == "" || len(occasions) == 0 {
		return nil
	}

	for i := range occasions {
		name := Normalize(occasions[i].Name)
		if name == "" {
			continue
		}
		if name == text || strings.Contains(text, name) || strings.Contains(name, text) {
			return &occasions[i]
		}
	}

	return nil
}
