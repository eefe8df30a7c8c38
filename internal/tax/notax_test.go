package tax_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stridewear/storefront/internal/tax"
)

func Test_NoTaxCalculator_AlwaysZero(t *testing.T) {
	calc := tax.NewNoTaxCalculator()

	tests := []struct {
		name   string
		params tax.TaxParams
	}{
		{"empty order", tax.TaxParams{}},
		{"typical order", tax.TaxParams{SubtotalCents: 12999, ShippingCents: 1000}},
		{"large order", tax.TaxParams{SubtotalCents: 10000000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.CalculateTax(context.Background(), tt.params)

			assert.NoError(t, err)
			assert.Equal(t, int64(0), result.TaxCents)
			assert.Equal(t, 0.0, result.Rate)
		})
	}
}
