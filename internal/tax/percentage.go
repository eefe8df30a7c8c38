package tax

import (
	"context"
	"math"
)

// PercentageCalculator calculates tax using a simple percentage rate
// applied to the order subtotal. Shipping is not taxed.
type PercentageCalculator struct {
	rate float64 // e.g., 0.07 for 7%
}

// NewPercentageCalculator creates a new percentage-based tax calculator.
func NewPercentageCalculator(rate float64) Calculator {
	return &PercentageCalculator{rate: rate}
}

// CalculateTax computes tax on the subtotal using the configured rate,
// rounded to the nearest cent.
func (c *PercentageCalculator) CalculateTax(ctx context.Context, params TaxParams) (*TaxResult, error) {
	tax := math.Round(float64(params.SubtotalCents) * c.rate)

	return &TaxResult{
		TaxCents: int64(tax),
		Rate:     c.rate,
	}, nil
}
