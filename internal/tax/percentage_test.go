package tax_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stridewear/storefront/internal/tax"
)

// The storefront default: 7% of a $100.00 subtotal is $7.00, with
// shipping excluded from the taxable amount.
func Test_PercentageCalculator_StorefrontDefault(t *testing.T) {
	calc := tax.NewPercentageCalculator(0.07)

	result, err := calc.CalculateTax(context.Background(), tax.TaxParams{
		SubtotalCents: 10000,
		ShippingCents: 1000,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, int64(700), result.TaxCents, "10000 * 0.07 = 700; shipping untaxed")
	assert.Equal(t, 0.07, result.Rate)
}

func Test_PercentageCalculator_DifferentTaxRates(t *testing.T) {
	tests := []struct {
		name        string
		rate        float64
		subtotal    int64
		expectedTax int64
		explanation string
	}{
		{
			name:        "zero percent rate",
			rate:        0.0,
			subtotal:    10000,
			expectedTax: 0,
			explanation: "10000 * 0.00 = 0",
		},
		{
			name:        "five percent rate",
			rate:        0.05,
			subtotal:    10000,
			expectedTax: 500,
			explanation: "10000 * 0.05 = 500",
		},
		{
			name:        "seven percent rate",
			rate:        0.07,
			subtotal:    5999,
			expectedTax: 420,
			explanation: "5999 * 0.07 = 419.93, rounds to 420",
		},
		{
			name:        "eight point five percent rate",
			rate:        0.085,
			subtotal:    10000,
			expectedTax: 850,
			explanation: "10000 * 0.085 = 850",
		},
		{
			name:        "one hundred percent rate edge case",
			rate:        1.0,
			subtotal:    5000,
			expectedTax: 5000,
			explanation: "5000 * 1.0 = 5000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := tax.NewPercentageCalculator(tt.rate)

			result, err := calc.CalculateTax(context.Background(), tax.TaxParams{
				SubtotalCents: tt.subtotal,
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTax, result.TaxCents, tt.explanation)
			assert.Equal(t, tt.rate, result.Rate)
		})
	}
}

func Test_PercentageCalculator_RoundingBehavior(t *testing.T) {
	tests := []struct {
		name        string
		rate        float64
		subtotal    int64
		expectedTax int64
		explanation string
	}{
		{
			name:        "rounds up above midpoint",
			rate:        0.07,
			subtotal:    1062,
			expectedTax: 74,
			explanation: "1062 * 0.07 = 74.34 -> 74",
		},
		{
			name:        "rounds down below midpoint",
			rate:        0.07,
			subtotal:    1033,
			expectedTax: 72,
			explanation: "1033 * 0.07 = 72.31 -> 72",
		},
		{
			name:        "exact cent amount no rounding",
			rate:        0.10,
			subtotal:    1000,
			expectedTax: 100,
			explanation: "1000 * 0.10 = 100.0 exactly",
		},
		{
			name:        "fractional cents round to nearest",
			rate:        0.065,
			subtotal:    1537,
			expectedTax: 100,
			explanation: "1537 * 0.065 = 99.905, rounds to 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := tax.NewPercentageCalculator(tt.rate)

			result, err := calc.CalculateTax(context.Background(), tax.TaxParams{
				SubtotalCents: tt.subtotal,
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTax, result.TaxCents, tt.explanation)

			expectedFloat := math.Round(float64(tt.subtotal) * tt.rate)
			assert.Equal(t, int64(expectedFloat), result.TaxCents, "should match math.Round behavior")
		})
	}
}

func Test_PercentageCalculator_EdgeCases(t *testing.T) {
	calc := tax.NewPercentageCalculator(0.07)

	t.Run("zero subtotal", func(t *testing.T) {
		result, err := calc.CalculateTax(context.Background(), tax.TaxParams{})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), result.TaxCents)
	})

	t.Run("very small subtotal rounds to a cent", func(t *testing.T) {
		result, err := calc.CalculateTax(context.Background(), tax.TaxParams{SubtotalCents: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.TaxCents, "10 * 0.07 = 0.7, rounds to 1")
	})

	t.Run("very large order", func(t *testing.T) {
		result, err := calc.CalculateTax(context.Background(), tax.TaxParams{SubtotalCents: 1000000})
		assert.NoError(t, err)
		assert.Equal(t, int64(70000), result.TaxCents)
	})
}

func Test_PercentageCalculator_Idempotency(t *testing.T) {
	calc := tax.NewPercentageCalculator(0.07)
	params := tax.TaxParams{SubtotalCents: 8750}

	result1, err1 := calc.CalculateTax(context.Background(), params)
	result2, err2 := calc.CalculateTax(context.Background(), params)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, result1.TaxCents, result2.TaxCents)
	assert.Equal(t, int64(613), result1.TaxCents, "8750 * 0.07 = 612.5, rounds to 613")
}
