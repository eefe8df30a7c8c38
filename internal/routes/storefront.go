package routes

import (
	"github.com/stridewear/storefront/internal/router"
)

// RegisterStorefrontRoutes registers all customer-facing API routes.
//
// Literal segments (featured, new-arrivals) must be registered on the
// same mux as the {id} wildcard; ServeMux prefers the more specific
// pattern, so /api/products/featured never captures as an id.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Product browsing
	r.Get("/api/products", deps.CatalogHandler.List)
	r.Get("/api/products/featured", deps.CatalogHandler.Featured)
	r.Get("/api/products/new-arrivals", deps.CatalogHandler.NewArrivals)
	r.Get("/api/products/{id}", deps.CatalogHandler.Detail)
	r.Get("/api/products/{id}/related", deps.CatalogHandler.Related)
	r.Get("/api/search", deps.CatalogHandler.Search)
	r.Get("/api/categories", deps.CatalogHandler.Categories)
	r.Get("/api/brands", deps.CatalogHandler.Brands)

	// Shopping cart
	r.Get("/api/cart", deps.CartHandler.View)
	r.Delete("/api/cart", deps.CartHandler.Clear)
	r.Post("/api/cart/items", deps.CartHandler.AddItem)
	r.Put("/api/cart/items/{productID}", deps.CartHandler.UpdateItem)
	r.Delete("/api/cart/items/{productID}", deps.CartHandler.RemoveItem)
	r.Post("/api/cart/promo", deps.CartHandler.ApplyPromo)
	r.Get("/api/cart/quote", deps.CartHandler.Quote)

	// Checkout
	if deps.CheckoutLimiter != nil {
		r.Post("/api/checkout", deps.CheckoutHandler.Submit, deps.CheckoutLimiter)
	} else {
		r.Post("/api/checkout", deps.CheckoutHandler.Submit)
	}
}
