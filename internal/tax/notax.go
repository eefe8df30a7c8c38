package tax

import "context"

// NoTaxCalculator always returns zero tax. Useful in tests and for
// deployments that do not collect tax at quote time.
type NoTaxCalculator struct{}

// NewNoTaxCalculator creates a calculator that charges no tax.
func NewNoTaxCalculator() Calculator {
	return &NoTaxCalculator{}
}

// CalculateTax returns zero for any order.
func (c *NoTaxCalculator) CalculateTax(ctx context.Context, params TaxParams) (*TaxResult, error) {
	return &TaxResult{TaxCents: 0, Rate: 0}, nil
}
