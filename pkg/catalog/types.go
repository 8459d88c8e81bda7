package catalog

// Category is a read-only reference row fetched from the storefront backend.
type Category struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// Occasion mirrors Category (birthday, anniversary, Tet, ...).
type Occasion struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is a read-only catalog snapshot row. Prices are absolute VND.
type Product struct {
	Id               int64  `json:"id"`
	Name             string `json:"name"`
	Price            int64  `json:"price"`
	CategoryId       *int64 `json:"category_id,omitempty"`
	OccasionId       *int64 `json:"occasion_id,omitempty"`
	IsActive         bool   `json:"is_active"`
	StockQuantity    int    `json:"stock_quantity"`
	ShortDescription string `json:"short_description,omitempty"`
}

// GiftOption is an add-on (wrapping paper, decorative accessory, card).
type GiftOption struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// GiftOptionKind selects which add-on list to fetch.
type GiftOptionKind string

const (
	GiftOptionWrappingPaper       GiftOptionKind = "wrapping-papers"
	GiftOptionDecorativeAccessory GiftOptionKind = "decorative-accessories"
	GiftOptionCardType            GiftOptionKind = "card-types"
)
