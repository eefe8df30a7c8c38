package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridewear/storefront/internal/catalog"
	"github.com/stridewear/storefront/internal/domain"
)

func fixture() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Delta", PriceCents: 5000, Rating: 4.0, CategoryID: "cat1", BrandID: "brand1", Discount: 20},
		{ID: "p2", Name: "alpha", PriceCents: 3000, Rating: 4.5, CategoryID: "cat2", BrandID: "brand1"},
		{ID: "p3", Name: "Charlie", PriceCents: 3000, Rating: 4.0, CategoryID: "cat1", BrandID: "brand2"},
		{ID: "p4", Name: "bravo", PriceCents: 8000, Rating: 3.0, CategoryID: "cat2", BrandID: "brand2", Discount: 10},
		{ID: "p5", Name: "Echo", PriceCents: 1000, Rating: 4.5, CategoryID: "cat3", BrandID: "brand3"},
	}
}

func ids(items []domain.Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func TestQuery_NoFilters(t *testing.T) {
	res := catalog.Query(fixture(), domain.FilterSpec{})

	assert.Equal(t, 5, res.TotalItems)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(res.Items), "newest keeps input order")
}

func TestQuery_Filters(t *testing.T) {
	tests := []struct {
		name string
		spec domain.FilterSpec
		want []string
	}{
		{
			name: "category membership",
			spec: domain.FilterSpec{CategoryIDs: []string{"cat1"}},
			want: []string{"p1", "p3"},
		},
		{
			name: "multiple categories",
			spec: domain.FilterSpec{CategoryIDs: []string{"cat1", "cat3"}},
			want: []string{"p1", "p3", "p5"},
		},
		{
			name: "brand membership",
			spec: domain.FilterSpec{BrandIDs: []string{"brand2"}},
			want: []string{"p3", "p4"},
		},
		{
			name: "price range inclusive at both ends",
			spec: domain.FilterSpec{PriceMinCents: 3000, PriceMaxCents: 5000},
			want: []string{"p1", "p2", "p3"},
		},
		{
			name: "on sale only",
			spec: domain.FilterSpec{OnSaleOnly: true},
			want: []string{"p1", "p4"},
		},
		{
			name: "predicates AND-combined",
			spec: domain.FilterSpec{CategoryIDs: []string{"cat2"}, OnSaleOnly: true},
			want: []string{"p4"},
		},
		{
			name: "inverted price range yields empty result",
			spec: domain.FilterSpec{PriceMinCents: 9000, PriceMaxCents: 100},
			want: []string{},
		},
		{
			name: "range outside all prices yields empty result",
			spec: domain.FilterSpec{PriceMinCents: 90000, PriceMaxCents: 99000},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := catalog.Query(fixture(), tt.spec)
			assert.Equal(t, tt.want, ids(res.Items))
			assert.Equal(t, len(tt.want), res.TotalItems)
		})
	}
}

func TestQuery_Sorting(t *testing.T) {
	tests := []struct {
		name string
		sort domain.SortKey
		want []string
	}{
		{"price ascending", domain.SortPriceAsc, []string{"p5", "p2", "p3", "p1", "p4"}},
		{"price descending", domain.SortPriceDesc, []string{"p4", "p1", "p3", "p2", "p5"}},
		// Collation is case-insensitive at the primary level, unlike a
		// byte compare: "alpha" < "bravo" < "Charlie" < "Delta" < "Echo".
		{"name ascending locale-aware", domain.SortNameAsc, []string{"p2", "p4", "p3", "p1", "p5"}},
		{"name descending locale-aware", domain.SortNameDesc, []string{"p5", "p1", "p3", "p4", "p2"}},
		// p2 and p5 tie at 4.5 and keep input order; likewise p1 and p3 at 4.0.
		{"popularity stable on ties", domain.SortPopularity, []string{"p2", "p5", "p1", "p3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := catalog.Query(fixture(), domain.FilterSpec{Sort: tt.sort, PageSize: 10})
			got := ids(res.Items)
			if tt.sort == domain.SortPopularity {
				// Only the top four are pinned by distinct ratings;
				// p4 (3.0) is always last.
				require.Len(t, got, 5)
				assert.Equal(t, tt.want, got[:4])
				assert.Equal(t, "p4", got[4])
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuery_SortStability_PriceTies(t *testing.T) {
	res := catalog.Query(fixture(), domain.FilterSpec{Sort: domain.SortPriceAsc})

	// p2 and p3 share a price; input order must hold between them.
	got := ids(res.Items)
	assert.Less(t, indexOf(got, "p2"), indexOf(got, "p3"))

	for i := 1; i < len(res.Items); i++ {
		assert.LessOrEqual(t, res.Items[i-1].PriceCents, res.Items[i].PriceCents)
	}
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	in := fixture()
	catalog.Query(in, domain.FilterSpec{Sort: domain.SortPriceAsc})

	assert.Equal(t, ids(fixture()), ids(in), "input slice must keep its order")
}

func TestQuery_Pagination(t *testing.T) {
	in := fixture()

	t.Run("window clipping", func(t *testing.T) {
		res := catalog.Query(in, domain.FilterSpec{Page: 2, PageSize: 2})
		assert.Equal(t, []string{"p3", "p4"}, ids(res.Items))
		assert.Equal(t, 2, res.Page)
		assert.Equal(t, 5, res.TotalItems)
		assert.Equal(t, 3, res.TotalPages)
	})

	t.Run("last partial page", func(t *testing.T) {
		res := catalog.Query(in, domain.FilterSpec{Page: 3, PageSize: 2})
		assert.Equal(t, []string{"p5"}, ids(res.Items))
	})

	t.Run("out of range page keeps totals", func(t *testing.T) {
		res := catalog.Query(in, domain.FilterSpec{Page: 9, PageSize: 2})
		assert.Empty(t, res.Items)
		assert.Equal(t, 9, res.Page)
		assert.Equal(t, 5, res.TotalItems)
		assert.Equal(t, 3, res.TotalPages)
	})

	t.Run("pages concatenate to the full list without gaps or duplicates", func(t *testing.T) {
		first := catalog.Query(in, domain.FilterSpec{Page: 1, PageSize: 2})

		var all []string
		for page := 1; page <= first.TotalPages; page++ {
			res := catalog.Query(in, domain.FilterSpec{Page: page, PageSize: 2})
			all = append(all, ids(res.Items)...)
		}
		assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, all)
	})
}

func TestQuery_EmptyInput(t *testing.T) {
	res := catalog.Query(nil, domain.FilterSpec{})

	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.TotalItems)
	assert.Equal(t, 1, res.TotalPages, "empty catalog still reports one page")
}

func TestQuery_TotalItemsMatchesPredicates(t *testing.T) {
	// Property check against the full generated catalog.
	c := catalog.Generate()
	spec := domain.FilterSpec{
		CategoryIDs:   []string{"cat1", "cat2"},
		PriceMinCents: 6000,
		PriceMaxCents: 12000,
		OnSaleOnly:    false,
		PageSize:      100,
	}

	res := catalog.Query(c.Products(), spec)

	count := 0
	for _, p := range c.Products() {
		if (p.CategoryID == "cat1" || p.CategoryID == "cat2") &&
			p.PriceCents >= 6000 && p.PriceCents <= 12000 {
			count++
		}
	}
	assert.Equal(t, count, res.TotalItems)
	assert.Len(t, res.Items, count)
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
