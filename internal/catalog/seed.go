// Package catalog holds the in-memory product catalog and the pure
// query engine that filters, sorts, and paginates it.
package catalog

import (
	"fmt"
	"math/rand"

	"github.com/stridewear/storefront/internal/domain"
)

// catalogSeed fixes the PRNG so every process generates the same catalog.
const catalogSeed = 20240517

// productCount is the size of the generated catalog.
const productCount = 36

var categoryNames = []string{"Running", "Casual", "Formal", "Sports"}

var categoryStyles = []string{"Road Runner", "Daybreak", "Oxford Line", "Court Pro"}

var brandNames = []string{"Apexline", "Veltra", "NorthTrail", "Corvan", "Lumen Step"}

var productFeatures = []string{
	"Breathable mesh upper",
	"Cushioned insole",
	"Durable rubber outsole",
	"Available in multiple colors",
}

const productDescription = "Comfortable and stylish shoe perfect for everyday wear. " +
	"Feature-packed with the latest technology for optimal comfort and support."

// Catalog is the immutable product/category/brand reference data for the
// lifetime of the process. The product slice is ordered newest-first;
// that ordering is what the "newest" sort preserves.
type Catalog struct {
	products   []domain.Product
	categories []domain.Category
	brands     []domain.Brand
	byID       map[string]domain.Product
}

// New builds a catalog over the given data. The slices are retained.
func New(products []domain.Product, categories []domain.Category, brands []domain.Brand) *Catalog {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{
		products:   products,
		categories: categories,
		brands:     brands,
		byID:       byID,
	}
}

// Generate builds the catalog from the fixed seed. Deterministic: two
// calls always produce identical data.
func Generate() *Catalog {
	r := rand.New(rand.NewSource(catalogSeed))

	products := make([]domain.Product, 0, productCount)
	for i := 0; i < productCount; i++ {
		catIdx := i % len(categoryNames)
		brandIdx := i % len(brandNames)

		discount := 0
		if i%5 == 0 {
			discount = 10 + r.Intn(30)
		}

		products = append(products, domain.Product{
			ID:          fmt.Sprintf("p%d", i+1),
			Name:        fmt.Sprintf("%s %d", categoryStyles[catIdx], i+1),
			PriceCents:  5999 + int64(i%10)*1000,
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/shoe%d/300/300", i+1),
			Description: productDescription,
			Rating:      2.5 + float64(r.Intn(6))/2,
			Discount:    discount,
			Stock:       5 + r.Intn(50),
			CategoryID:  fmt.Sprintf("cat%d", catIdx+1),
			BrandID:     fmt.Sprintf("brand%d", brandIdx+1),
			IsNew:       i%7 == 0,
			Features:    productFeatures,
		})
	}

	catCounts := make(map[string]int)
	brandCounts := make(map[string]int)
	for _, p := range products {
		catCounts[p.CategoryID]++
		brandCounts[p.BrandID]++
	}

	categories := make([]domain.Category, 0, len(categoryNames))
	for i, name := range categoryNames {
		id := fmt.Sprintf("cat%d", i+1)
		categories = append(categories, domain.Category{
			ID:       id,
			Name:     name,
			Count:    catCounts[id],
			ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/500/300", id),
		})
	}

	brands := make([]domain.Brand, 0, len(brandNames))
	for i, name := range brandNames {
		id := fmt.Sprintf("brand%d", i+1)
		brands = append(brands, domain.Brand{
			ID:    id,
			Name:  name,
			Count: brandCounts[id],
		})
	}

	return New(products, categories, brands)
}

// Products returns the full catalog in newest-first order. Callers must
// not mutate the returned slice; sort on a copy.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

// Product looks up a single product by id.
func (c *Catalog) Product(id string) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Categories returns the category reference data.
func (c *Catalog) Categories() []domain.Category {
	return c.categories
}

// Brands returns the brand reference data.
func (c *Catalog) Brands() []domain.Brand {
	return c.brands
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
