package shipping_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridewear/storefront/internal/shipping"
)

func standardRate() shipping.FlatRate {
	return shipping.FlatRate{
		ServiceName: "Standard Shipping",
		ServiceCode: "standard",
		CostCents:   1000,
		DaysMin:     3,
		DaysMax:     5,
	}
}

func TestFlatRateProvider_GetRate_ChargesBelowThreshold(t *testing.T) {
	provider := shipping.NewFlatRateProvider(standardRate(), 10000)

	rate, err := provider.GetRate(context.Background(), shipping.RateParams{SubtotalCents: 9999})

	require.NoError(t, err)
	assert.Equal(t, "Standard Shipping", rate.ServiceName)
	assert.Equal(t, "standard", rate.ServiceCode)
	assert.Equal(t, int64(1000), rate.CostCents)
	assert.Equal(t, 3, rate.DaysMin)
	assert.Equal(t, 5, rate.DaysMax)
}

func TestFlatRateProvider_GetRate_FreeAtThreshold(t *testing.T) {
	provider := shipping.NewFlatRateProvider(standardRate(), 10000)

	tests := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{"just below threshold", 9999, 1000},
		{"exactly at threshold", 10000, 0},
		{"above threshold", 25000, 0},
		{"small order", 500, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := provider.GetRate(context.Background(), shipping.RateParams{SubtotalCents: tt.subtotal})
			require.NoError(t, err)
			assert.Equal(t, tt.want, rate.CostCents)
		})
	}
}

func TestFlatRateProvider_GetRate_EmptyOrderIsFree(t *testing.T) {
	provider := shipping.NewFlatRateProvider(standardRate(), 10000)

	rate, err := provider.GetRate(context.Background(), shipping.RateParams{SubtotalCents: 0})

	require.NoError(t, err)
	assert.Equal(t, int64(0), rate.CostCents, "an empty cart should not be charged shipping")
}

func TestFlatRateProvider_GetRate_ThresholdDisabled(t *testing.T) {
	provider := shipping.NewFlatRateProvider(standardRate(), 0)

	rate, err := provider.GetRate(context.Background(), shipping.RateParams{SubtotalCents: 1000000})

	require.NoError(t, err)
	assert.Equal(t, int64(1000), rate.CostCents, "threshold 0 means flat rate always applies")
}
