package detect

import (
	"strings"

	"giftshop-chatbot-be/pkg/catalog"
)

// SearchByName returns products whose name or short description overlaps the
// query, case-insensitive, in catalog order. A product also matches when its
// name appears inside a longer utterance ("tìm gấu bông màu nâu").
func SearchByName(query string, products []catalog.Product) []catalog.Product {
	query = Normalize(query)
	if query == "" {
		return nil
	}

	var matches []catalog.Product
	for _, p := range products {
		name := Normalize(p.Name)
		desc := Normalize(p.ShortDescription)
		if name == "" {
			continue
		}
		if strings.Contains(name, query) || strings.Contains(query, name) ||
			(desc != "" && strings.Contains(desc, query)) {
			matches = append(matches, p)
		}
	}
	return matches
}
