package catalog

import (
	"slices"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/stridewear/storefront/internal/domain"
)

// Query filters, sorts, and paginates products according to spec. It is a
// pure function: the input slice is never mutated and the result shares
// no backing array with it. An inverted price range or an out-of-range
// page produces an empty item slice with correct totals, never an error.
func Query(products []domain.Product, spec domain.FilterSpec) domain.PageResult {
	spec.Normalize()

	filtered := filter(products, spec)
	sortProducts(filtered, spec.Sort)

	return paginate(filtered, spec.Page, spec.PageSize)
}

// filter applies the AND-combined predicates, each skipped when inactive.
func filter(products []domain.Product, spec domain.FilterSpec) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if len(spec.CategoryIDs) > 0 && !slices.Contains(spec.CategoryIDs, p.CategoryID) {
			continue
		}
		if len(spec.BrandIDs) > 0 && !slices.Contains(spec.BrandIDs, p.BrandID) {
			continue
		}
		if spec.HasPriceRange() {
			if p.PriceCents < spec.PriceMinCents || p.PriceCents > spec.PriceMaxCents {
				continue
			}
		}
		if spec.OnSaleOnly && !p.OnSale() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// sortProducts orders the slice in place. All sorts are stable so that
// ties keep their relative catalog order; "newest" is the identity
// because the catalog is generated newest-first.
func sortProducts(products []domain.Product, key domain.SortKey) {
	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents < products[j].PriceCents
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents > products[j].PriceCents
		})
	case domain.SortNameAsc:
		c := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case domain.SortNameDesc:
		c := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) > 0
		})
	case domain.SortPopularity:
		SortByRating(products)
	case domain.SortNewest:
		// Input order is newest-first already.
	}
}

// SortByRating orders products by rating descending, ties keeping their
// relative input order. Shared with the featured-products selection.
func SortByRating(products []domain.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Rating > products[j].Rating
	})
}

// paginate slices out the 1-based page window, clipped to the available
// length. TotalPages is at least 1 so an empty result still reports one
// (empty) page.
func paginate(items []domain.Product, page, size int) domain.PageResult {
	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return domain.PageResult{
		Items:      items[start:end],
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
