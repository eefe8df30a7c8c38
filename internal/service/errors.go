package service

import (
	"github.com/stridewear/storefront/internal/domain"
)

// Catalog errors - use domain.ENOTFOUND
var (
	ErrProductNotFound = domain.Errorf(domain.ENOTFOUND, "", "Product not found")
	ErrCartNotFound    = domain.Errorf(domain.ENOTFOUND, "", "Cart not found")
)

// Validation errors - use domain.EINVALID
var (
	ErrInvalidQuantity  = domain.Errorf(domain.EINVALID, "", "Quantity must be greater than 0")
	ErrInvalidPromoCode = domain.Errorf(domain.EINVALID, "", "Unknown promo code")
)

// Checkout is a deliberate stub: the storefront quotes orders but does
// not capture payment.
var ErrCheckoutNotImplemented = domain.Errorf(domain.ENOTIMPL, "", "Checkout is not implemented")
