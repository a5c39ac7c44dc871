package catalog

// Product is the denormalized, UI-ready record returned by the catalog API.
// Tags and PurchaseCount are derived from the product_tags and order_items
// tables; everything else maps straight onto the products table.
// JSON tags follow the camelCase convention used by the frontend.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Rating        float64  `json:"rating"`
	InStock       bool     `json:"inStock"`
	ImageURL      string   `json:"imageUrl"`
	Tags          []string `json:"tags"`
	PurchaseCount int      `json:"purchaseCount"`
}

// SortKey selects the ordering of a product listing. The zero value means
// no explicit ordering (storage-natural order).
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortRating    SortKey = "rating"
	SortPopular   SortKey = "popular"
)

// ParseSortKey maps a raw query-string value onto a SortKey. Unrecognized
// values fall back to SortNone rather than failing the request.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortRating, SortPopular:
		return SortKey(s)
	default:
		return SortNone
	}
}

// Query is a fully-typed listing request. All fields are optional; the zero
// value lists the whole catalog. An empty Categories/Brands slice means
// "no constraint on this dimension", never "match nothing". Nil price bounds
// mean the bound is absent; set bounds are inclusive.
type Query struct {
	Search     string
	Categories []string
	Brands     []string
	MinPrice   *float64
	MaxPrice   *float64
	Sort       SortKey
}

// FilterOptions holds the distinct category and brand values present in the
// catalog, each sorted ascending. It always reflects the full product table,
// independent of any active query.
type FilterOptions struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}
