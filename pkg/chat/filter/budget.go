package filter

import (
	"giftshop-chatbot-be/pkg/catalog"
	"giftshop-chatbot-be/pkg/chat/detect"
)

// ByBudget keeps products whose price satisfies the budget constraint,
// preserving input order. A nil budget passes everything through.
func ByBudget(products []catalog.Product, budget *detect.Budget) []catalog.Product {
	if budget == nil {
		return products
	}

	kept := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		switch budget.Kind {
		case detect.BudgetMax:
			if p.Price <= budget.Max {
				kept = append(kept, p)
			}
		case detect.BudgetMin:
			if p.Price >= budget.Min {
				kept = append(kept, p)
			}
		case detect.BudgetRange:
			if p.Price >= budget.Min && p.Price <= budget.Max {
				kept = append(kept, p)
			}
		}
	}
	return kept
}

// Active keeps in-stock, active products in catalog order.
func Active(products []catalog.Product) []catalog.Product {
	kept := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if p.IsActive && p.StockQuantity > 0 {
			kept = append(kept, p)
		}
	}
	return kept
}

// Truncate caps a result set for display. Truncation is a presentation
// concern applied after filtering, never inside a filter.
func Truncate(products []catalog.Product, limit int) []catalog.Product {
	if limit <= 0 || len(products) <= limit {
		return products
	}
	return products[:limit]
}
