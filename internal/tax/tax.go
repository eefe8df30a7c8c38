// Package tax computes order tax behind a small Calculator seam so the
// flat-percentage default can later be swapped for a real provider.
package tax

import "context"

// Calculator defines the interface for tax calculation.
// Implementations: PercentageCalculator, NoTaxCalculator.
type Calculator interface {
	// CalculateTax computes tax for an order. Returns tax in cents.
	CalculateTax(ctx context.Context, params TaxParams) (*TaxResult, error)
}

// TaxParams contains the information needed for tax calculation.
// Shipping is carried separately so calculators can decide whether to
// tax it; the storefront default taxes the subtotal only.
type TaxParams struct {
	SubtotalCents int64
	ShippingCents int64
}

// TaxResult holds the computed tax amount.
type TaxResult struct {
	TaxCents int64
	Rate     float64
}
