package domain

// =============================================================================
// CATALOG DOMAIN TYPES
// =============================================================================

// SortKey selects the ordering applied by the query engine.
type SortKey string

const (
	// SortNewest preserves catalog order. The catalog is generated
	// newest-first, so generation order stands in for a creation timestamp.
	SortNewest     SortKey = "newest"
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortNameAsc    SortKey = "name_asc"
	SortNameDesc   SortKey = "name_desc"
	SortPopularity SortKey = "popularity"
)

// Product is a catalog entry. Products are generated once at startup and
// never mutated, so values can be shared freely across goroutines.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	PriceCents  int64    `json:"price_cents"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`   // 0-5 in half-point steps
	Discount    int      `json:"discount"` // percent off, 0 = not on sale
	Stock       int      `json:"stock"`
	CategoryID  string   `json:"category_id"`
	BrandID     string   `json:"brand_id"`
	IsNew       bool     `json:"is_new"`
	Features    []string `json:"features,omitempty"`
}

// OnSale reports whether the product carries an active discount.
func (p Product) OnSale() bool {
	return p.Discount > 0
}

// DiscountedUnitCents returns the effective unit price after discount,
// rounded half-up to the nearest cent.
func (p Product) DiscountedUnitCents() int64 {
	if p.Discount <= 0 {
		return p.PriceCents
	}
	return (p.PriceCents*int64(100-p.Discount) + 50) / 100
}

// Category is static reference data describing a product grouping.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
	ImageURL string `json:"image_url,omitempty"`
}

// Brand is static reference data describing a product manufacturer.
type Brand struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FilterSpec is the combined filter/sort/pagination request accepted by
// the query engine. The zero value of each predicate disables it; an
// inverted price range (min > max) yields an empty result, not an error.
type FilterSpec struct {
	CategoryIDs   []string `json:"category_ids" validate:"dive,required"`
	BrandIDs      []string `json:"brand_ids" validate:"dive,required"`
	PriceMinCents int64    `json:"price_min_cents" validate:"min=0"`
	PriceMaxCents int64    `json:"price_max_cents" validate:"min=0"`
	OnSaleOnly    bool     `json:"on_sale_only"`
	Sort          SortKey  `json:"sort" validate:"omitempty,oneof=newest price_asc price_desc name_asc name_desc popularity"`
	Page          int      `json:"page" validate:"omitempty,min=1"`
	PageSize      int      `json:"page_size" validate:"omitempty,min=1,max=100"`
}

// DefaultPageSize is applied when a request does not name a page size.
const DefaultPageSize = 12

// Normalize fills in pagination defaults for zero-valued fields.
func (f *FilterSpec) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.Sort == "" {
		f.Sort = SortNewest
	}
}

// HasPriceRange reports whether the price range predicate is active.
func (f FilterSpec) HasPriceRange() bool {
	return f.PriceMinCents > 0 || f.PriceMaxCents > 0
}

// PageResult is one page of products plus pagination metadata. All fields
// are derived together by the query engine; TotalPages is always
// max(1, ceil(TotalItems/PageSize)).
type PageResult struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalItems int       `json:"total_items"`
	TotalPages int       `json:"total_pages"`
}

// SearchResult holds a capped set of search matches. TotalItems reports
// the true match count even when Items is truncated to the cap.
type SearchResult struct {
	Items      []Product `json:"items"`
	TotalItems int       `json:"total_items"`
}
