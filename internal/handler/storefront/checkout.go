package storefront

import (
	"net/http"

	"github.com/stridewear/storefront/internal/handler"
	"github.com/stridewear/storefront/internal/service"
)

// CheckoutHandler owns the order placement endpoint. Payment capture is
// not wired up; the endpoint exists so clients get a stable contract.
type CheckoutHandler struct{}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler() *CheckoutHandler {
	return &CheckoutHandler{}
}

// Submit handles POST /api/checkout
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	handler.ErrorResponse(w, r, service.ErrCheckoutNotImplemented)
}
