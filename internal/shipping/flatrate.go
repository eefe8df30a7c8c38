package shipping

import "context"

// FlatRateProvider charges a single flat rate, waived once the order
// subtotal reaches a free-shipping threshold.
type FlatRateProvider struct {
	rate              FlatRate
	freeOverCents     int64
	thresholdDisabled bool
}

// FlatRate defines the flat shipping option.
type FlatRate struct {
	ServiceName string
	ServiceCode string
	CostCents   int64
	DaysMin     int
	DaysMax     int
}

// NewFlatRateProvider creates a provider charging rate.CostCents on
// every order. freeOverCents <= 0 disables the free-shipping threshold.
func NewFlatRateProvider(rate FlatRate, freeOverCents int64) Provider {
	return &FlatRateProvider{
		rate:              rate,
		freeOverCents:     freeOverCents,
		thresholdDisabled: freeOverCents <= 0,
	}
}

// GetRate returns the flat rate, at zero cost when the subtotal meets
// the free-shipping threshold. An empty order still rates at zero.
func (p *FlatRateProvider) GetRate(ctx context.Context, params RateParams) (*Rate, error) {
	cost := p.rate.CostCents
	if params.SubtotalCents <= 0 {
		cost = 0
	} else if !p.thresholdDisabled && params.SubtotalCents >= p.freeOverCents {
		cost = 0
	}

	return &Rate{
		ServiceName: p.rate.ServiceName,
		ServiceCode: p.rate.ServiceCode,
		CostCents:   cost,
		DaysMin:     p.rate.DaysMin,
		DaysMax:     p.rate.DaysMax,
	}, nil
}
