package service

import (
	"context"
	"math"

	"github.com/stridewear/storefront/internal/domain"
	"github.com/stridewear/storefront/internal/shipping"
	"github.com/stridewear/storefront/internal/tax"
)

// QuoteService prices a cart: subtotal plus shipping and tax, less any
// promo discount. Quotes are advisory; checkout itself is not built.
type QuoteService interface {
	Quote(ctx context.Context, sessionID string) (*domain.OrderQuote, error)
}

type quoteService struct {
	carts   CartService
	rates   shipping.Provider
	taxCalc tax.Calculator
}

// NewQuoteService composes a quote service from the cart store and the
// shipping/tax seams.
func NewQuoteService(carts CartService, rates shipping.Provider, taxCalc tax.Calculator) QuoteService {
	return &quoteService{
		carts:   carts,
		rates:   rates,
		taxCalc: taxCalc,
	}
}

// Quote builds an order quote for the session's cart.
// Total = Subtotal + Shipping + Tax - Discount.
func (s *quoteService) Quote(ctx context.Context, sessionID string) (*domain.OrderQuote, error) {
	summary, err := s.carts.GetSummary(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	rate, err := s.rates.GetRate(ctx, shipping.RateParams{SubtotalCents: summary.SubtotalCents})
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, "quote", "shipping rate lookup failed")
	}

	taxResult, err := s.taxCalc.CalculateTax(ctx, tax.TaxParams{
		SubtotalCents: summary.SubtotalCents,
		ShippingCents: rate.CostCents,
	})
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, "quote", "tax calculation failed")
	}

	var discount int64
	switch summary.Cart.PromoCode {
	case PromoWelcome10:
		discount = int64(math.Round(float64(summary.SubtotalCents) * 0.10))
	case PromoFreeShip:
		// Comps the shipping charge; worthless on already-free shipping.
		discount = rate.CostCents
	}

	return &domain.OrderQuote{
		SubtotalCents: summary.SubtotalCents,
		ShippingCents: rate.CostCents,
		TaxCents:      taxResult.TaxCents,
		DiscountCents: discount,
		TotalCents:    summary.SubtotalCents + rate.CostCents + taxResult.TaxCents - discount,
		PromoCode:     summary.Cart.PromoCode,
	}, nil
}
