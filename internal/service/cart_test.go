package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridewear/storefront/internal/catalog"
	"github.com/stridewear/storefront/internal/domain"
	"github.com/stridewear/storefront/internal/service"
)

func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]domain.Product{
		{ID: "full", Name: "Full Price", PriceCents: 5000, CategoryID: "cat1", BrandID: "brand1"},
		{ID: "sale", Name: "On Sale", PriceCents: 10000, Discount: 20, CategoryID: "cat1", BrandID: "brand2"},
		{ID: "odd", Name: "Odd Discount", PriceCents: 3333, Discount: 15, CategoryID: "cat2", BrandID: "brand1"},
	}, nil, nil)
}

func newCartStore(t *testing.T) *service.CartStore {
	t.Helper()
	store := service.NewCartStore(fixtureCatalog(), 0)
	t.Cleanup(store.Close)
	return store
}

func newSession(t *testing.T, store *service.CartStore) string {
	t.Helper()
	_, sid, err := store.GetOrCreateCart(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, sid)
	return sid
}

func TestCartStore_GetOrCreateCart(t *testing.T) {
	store := newCartStore(t)
	ctx := context.Background()

	t.Run("empty session mints a new one", func(t *testing.T) {
		cart, sid, err := store.GetOrCreateCart(ctx, "")

		require.NoError(t, err)
		assert.NotEmpty(t, sid)
		assert.Equal(t, sid, cart.SessionID)
	})

	t.Run("known session is reused", func(t *testing.T) {
		_, sid, err := store.GetOrCreateCart(ctx, "")
		require.NoError(t, err)

		_, again, err := store.GetOrCreateCart(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, sid, again)
	})

	t.Run("unknown session is replaced", func(t *testing.T) {
		_, sid, err := store.GetOrCreateCart(ctx, "stale-session")

		require.NoError(t, err)
		assert.NotEqual(t, "stale-session", sid)
	})
}

func TestCartStore_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adding twice sums quantities", func(t *testing.T) {
		store := newCartStore(t)
		sid := newSession(t, store)

		_, err := store.AddItem(ctx, sid, "full", 1)
		require.NoError(t, err)

		summary, err := store.AddItem(ctx, sid, "full", 2)
		require.NoError(t, err)

		require.Len(t, summary.Items, 1)
		assert.Equal(t, 3, summary.Items[0].Quantity)
		assert.Equal(t, 3, summary.ItemCount)
	})

	t.Run("unknown product", func(t *testing.T) {
		store := newCartStore(t)
		sid := newSession(t, store)

		_, err := store.AddItem(ctx, sid, "ghost", 1)
		assert.ErrorIs(t, err, service.ErrProductNotFound)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		store := newCartStore(t)
		sid := newSession(t, store)

		for _, qty := range []int{0, -1} {
			_, err := store.AddItem(ctx, sid, "full", qty)
			assert.ErrorIs(t, err, service.ErrInvalidQuantity)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		store := newCartStore(t)

		_, err := store.AddItem(ctx, "nope", "full", 1)
		assert.ErrorIs(t, err, service.ErrCartNotFound)
	})
}

func TestCartStore_Totals(t *testing.T) {
	ctx := context.Background()
	store := newCartStore(t)
	sid := newSession(t, store)

	// 10000 cents at 20% off, twice: 8000 * 2.
	summary, err := store.AddItem(ctx, sid, "sale", 2)
	require.NoError(t, err)

	require.Len(t, summary.Items, 1)
	assert.Equal(t, int64(8000), summary.Items[0].UnitPriceCents)
	assert.Equal(t, int64(16000), summary.Items[0].LineSubtotal)
	assert.Equal(t, int64(16000), summary.SubtotalCents)

	// 3333 at 15% off rounds half up: 2833.05 -> 2833.
	summary, err = store.AddItem(ctx, sid, "odd", 1)
	require.NoError(t, err)

	assert.Equal(t, int64(16000+2833), summary.SubtotalCents)
	assert.Equal(t, 3, summary.ItemCount)
}

func TestCartStore_UpdateItemQuantity(t *testing.T) {
	ctx := context.Background()
	store := newCartStore(t)
	sid := newSession(t, store)

	_, err := store.AddItem(ctx, sid, "full", 2)
	require.NoError(t, err)

	t.Run("sets absolute quantity", func(t *testing.T) {
		summary, err := store.UpdateItemQuantity(ctx, sid, "full", 5)

		require.NoError(t, err)
		assert.Equal(t, 5, summary.Items[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		summary, err := store.UpdateItemQuantity(ctx, sid, "full", 0)

		require.NoError(t, err)
		assert.Empty(t, summary.Items)
		assert.Zero(t, summary.SubtotalCents)
	})
}

func TestCartStore_RemoveItem(t *testing.T) {
	ctx := context.Background()
	store := newCartStore(t)
	sid := newSession(t, store)

	_, err := store.AddItem(ctx, sid, "full", 1)
	require.NoError(t, err)
	_, err = store.AddItem(ctx, sid, "sale", 1)
	require.NoError(t, err)

	summary, err := store.RemoveItem(ctx, sid, "full")
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "sale", summary.Items[0].ProductID)

	// Removing an absent product is a no-op, not an error.
	summary, err = store.RemoveItem(ctx, sid, "full")
	require.NoError(t, err)
	assert.Len(t, summary.Items, 1)
}

func TestCartStore_ApplyPromo(t *testing.T) {
	ctx := context.Background()
	store := newCartStore(t)
	sid := newSession(t, store)

	t.Run("valid code normalized", func(t *testing.T) {
		summary, err := store.ApplyPromo(ctx, sid, "  welcome10 ")

		require.NoError(t, err)
		assert.Equal(t, service.PromoWelcome10, summary.Cart.PromoCode)
	})

	t.Run("replacing the code", func(t *testing.T) {
		summary, err := store.ApplyPromo(ctx, sid, service.PromoFreeShip)

		require.NoError(t, err)
		assert.Equal(t, service.PromoFreeShip, summary.Cart.PromoCode)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := store.ApplyPromo(ctx, sid, "SAVEBIG")
		assert.ErrorIs(t, err, service.ErrInvalidPromoCode)
	})
}

func TestCartStore_ClearCart(t *testing.T) {
	ctx := context.Background()
	store := newCartStore(t)
	sid := newSession(t, store)

	_, err := store.AddItem(ctx, sid, "full", 2)
	require.NoError(t, err)
	_, err = store.ApplyPromo(ctx, sid, service.PromoWelcome10)
	require.NoError(t, err)

	require.NoError(t, err)
	require.NoError(t, store.ClearCart(ctx, sid))

	summary, err := store.GetSummary(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.SubtotalCents)
	assert.Empty(t, summary.Cart.PromoCode)

	assert.ErrorIs(t, store.ClearCart(ctx, "nope"), service.ErrCartNotFound)
}

func TestCartStore_TTLSweep(t *testing.T) {
	store := service.NewCartStore(fixtureCatalog(), 40*time.Millisecond)
	defer store.Close()

	sid := newSession(t, store)

	require.Eventually(t, func() bool {
		_, err := store.GetSummary(context.Background(), sid)
		return domain.ErrorCode(err) == domain.ENOTFOUND
	}, time.Second, 10*time.Millisecond, "idle cart should be swept")
}

func TestCartStore_Concurrency(t *testing.T) {
	ctx := context.Background()
	store := newCartStore(t)
	sid := newSession(t, store)

	const workers = 8
	const perWorker = 25

	done := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			for j := 0; j < perWorker; j++ {
				if _, err := store.AddItem(ctx, sid, "full", 1); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < workers; i++ {
		require.NoError(t, <-done)
	}

	summary, err := store.GetSummary(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, workers*perWorker, summary.ItemCount)
}
