package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridewear/storefront/internal/catalog"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := catalog.Generate()
	b := catalog.Generate()

	require.Equal(t, a.Len(), b.Len())
	assert.Equal(t, a.Products(), b.Products(), "two generations should be identical")
	assert.Equal(t, a.Categories(), b.Categories())
	assert.Equal(t, a.Brands(), b.Brands())
}

func TestGenerate_ProductInvariants(t *testing.T) {
	c := catalog.Generate()

	require.Equal(t, 36, c.Len())

	seen := make(map[string]bool)
	for _, p := range c.Products() {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.GreaterOrEqual(t, p.PriceCents, int64(0))
		assert.GreaterOrEqual(t, p.Rating, 2.5)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.Equal(t, float64(int(p.Rating*2)), p.Rating*2, "rating must be in half-point steps")
		assert.GreaterOrEqual(t, p.Discount, 0)
		assert.Less(t, p.Discount, 100)
		assert.GreaterOrEqual(t, p.Stock, 0)
		assert.NotEmpty(t, p.CategoryID)
		assert.NotEmpty(t, p.BrandID)
	}
}

func TestGenerate_ReferenceCounts(t *testing.T) {
	c := catalog.Generate()

	// Member counts must agree with actual membership.
	catCounts := make(map[string]int)
	brandCounts := make(map[string]int)
	for _, p := range c.Products() {
		catCounts[p.CategoryID]++
		brandCounts[p.BrandID]++
	}

	require.Len(t, c.Categories(), 4)
	totalCat := 0
	for _, cat := range c.Categories() {
		assert.Equal(t, catCounts[cat.ID], cat.Count, "category %s", cat.ID)
		totalCat += cat.Count
	}
	assert.Equal(t, c.Len(), totalCat)

	require.Len(t, c.Brands(), 5)
	totalBrand := 0
	for _, b := range c.Brands() {
		assert.Equal(t, brandCounts[b.ID], b.Count, "brand %s", b.ID)
		totalBrand += b.Count
	}
	assert.Equal(t, c.Len(), totalBrand)
}

func TestProduct_Lookup(t *testing.T) {
	c := catalog.Generate()

	p, ok := c.Product("p1")
	require.True(t, ok)
	assert.Equal(t, "p1", p.ID)

	_, ok = c.Product("does-not-exist")
	assert.False(t, ok)
}

func TestProduct_DiscountedUnitCents(t *testing.T) {
	c := catalog.Generate()

	for _, p := range c.Products() {
		unit := p.DiscountedUnitCents()
		if p.Discount == 0 {
			assert.Equal(t, p.PriceCents, unit)
		} else {
			assert.Less(t, unit, p.PriceCents)
			assert.Greater(t, unit, int64(0))
		}
	}
}
