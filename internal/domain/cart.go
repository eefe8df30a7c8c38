package domain

import "time"

// =============================================================================
// CART DOMAIN TYPES
// =============================================================================

// Cart is a lightweight cart view model. Carts are session-scoped and
// live only as long as the process; there is no persistence.
type Cart struct {
	SessionID string    `json:"session_id"`
	PromoCode string    `json:"promo_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is the authoritative cart record: one product-quantity pair.
// At most one line exists per product id, and quantity is always positive;
// a line whose quantity drops to zero is removed, never stored.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartItem is a cart line joined with product details and line totals,
// built on demand when a summary is requested.
type CartItem struct {
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	ImageURL       string `json:"image_url"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"` // after discount
	Discount       int    `json:"discount"`
	LineSubtotal   int64  `json:"line_subtotal_cents"`
}

// CartSummary aggregates a cart with its items and derived totals.
// SubtotalCents and ItemCount are recomputed from the lines on every
// read; they are never independently settable.
type CartSummary struct {
	Cart          Cart       `json:"cart"`
	Items         []CartItem `json:"items"`
	SubtotalCents int64      `json:"subtotal_cents"`
	ItemCount     int        `json:"item_count"`
}

// OrderQuote extends the cart subtotal with shipping, tax, and any promo
// discount. TotalCents is always Subtotal + Shipping + Tax - Discount.
type OrderQuote struct {
	SubtotalCents int64  `json:"subtotal_cents"`
	ShippingCents int64  `json:"shipping_cents"`
	TaxCents      int64  `json:"tax_cents"`
	DiscountCents int64  `json:"discount_cents"`
	TotalCents    int64  `json:"total_cents"`
	PromoCode     string `json:"promo_code,omitempty"`
}
