// Package shipping prices order shipping behind a Provider seam so the
// flat-rate default can later be replaced by a carrier integration.
package shipping

import "context"

// Provider defines the interface for shipping rate lookup.
type Provider interface {
	// GetRate returns the shipping charge for an order.
	GetRate(ctx context.Context, params RateParams) (*Rate, error)
}

// RateParams contains the order information rates are computed from.
// The storefront has no addresses or package weights; the subtotal is
// the only input the flat-rate provider needs.
type RateParams struct {
	SubtotalCents int64
}

// Rate is a priced shipping option.
type Rate struct {
	ServiceName string
	ServiceCode string
	CostCents   int64
	DaysMin     int
	DaysMax     int
}
