package routes

import (
	"github.com/stridewear/storefront/internal/handler/storefront"
	"github.com/stridewear/storefront/internal/router"
)

// StorefrontDeps contains dependencies for the storefront API routes.
type StorefrontDeps struct {
	// Catalog browsing (list, detail, related, featured, new arrivals,
	// search, reference data)
	CatalogHandler *storefront.CatalogHandler

	// Cart and order quotes
	CartHandler *storefront.CartHandler

	// Order placement
	CheckoutHandler *storefront.CheckoutHandler

	// Tighter rate limit applied to checkout submissions. Optional.
	CheckoutLimiter router.Middleware
}
