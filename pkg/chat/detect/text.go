package detect

import (
	"strings"
	"unicode"
)

// Normalize lowercases and trims an utterance before keyword matching.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// foldPunct replaces punctuation with spaces so word-boundary checks work on
// inputs like "quà cho nam, 25 tuổi".
func foldPunct(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return ' '
		}
		return r
	}, text)
}

// containsWord reports whether the normalized text contains the keyword as a
// whole word (or whole phrase for multi-word keywords). Plain substring
// matching would trip on tokens like "nam" inside "Vietnam".
func containsWord(text, keyword string) bool {
	padded := " " + foldPunct(text) + " "
	return strings.Contains(padded, " "+keyword+" ")
}

// containsAnyWord returns the first keyword of the set present in the text,
// scanning in declared order. Empty string when none match.
func containsAnyWord(text string, keywords []string) string {
	for _, kw := range keywords {
		if containsWord(text, kw) {
			return kw
		}
	}
	return ""
}

// tokenize splits the normalized text into whitespace tokens with punctuation
// stripped.
func tokenize(text string) []string {
	return strings.Fields(foldPunct(text))
}
