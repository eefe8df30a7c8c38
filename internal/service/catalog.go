package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/stridewear/storefront/internal/catalog"
	"github.com/stridewear/storefront/internal/domain"
)

const (
	// featuredCount is how many top-rated products ListFeatured returns.
	featuredCount = 8

	// newArrivalCount is the fixed size of the new-arrivals strip. When
	// fewer products are flagged new, the strip is backfilled with
	// non-new products in catalog order.
	newArrivalCount = 4

	// DefaultRelatedLimit is used when ListRelated is called without a limit.
	DefaultRelatedLimit = 4

	// searchResultCap bounds the returned search items. TotalItems still
	// reports the uncapped match count.
	searchResultCap = 20
)

// CatalogService provides read access to the product catalog. Every
// accessor suspends for a configurable simulated latency before
// computing its result, modelling a network round-trip without real I/O.
type CatalogService interface {
	ListProducts(ctx context.Context, spec domain.FilterSpec) (*domain.PageResult, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	ListNewArrivals(ctx context.Context) ([]domain.Product, error)
	ListRelated(ctx context.Context, id string, limit int) ([]domain.Product, error)
	Search(ctx context.Context, query string) (*domain.SearchResult, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
}

// LatencyProfile holds the simulated delay per accessor. The zero value
// disables latency entirely (used in tests).
type LatencyProfile struct {
	List        time.Duration
	Get         time.Duration
	Featured    time.Duration
	NewArrivals time.Duration
	Related     time.Duration
	Search      time.Duration
	Reference   time.Duration
}

// DefaultLatency mirrors a believable storefront backend: list calls are
// slowest, reference data fastest.
func DefaultLatency() LatencyProfile {
	return LatencyProfile{
		List:        800 * time.Millisecond,
		Get:         500 * time.Millisecond,
		Featured:    600 * time.Millisecond,
		NewArrivals: 600 * time.Millisecond,
		Related:     500 * time.Millisecond,
		Search:      600 * time.Millisecond,
		Reference:   400 * time.Millisecond,
	}
}

// Scale multiplies every delay by factor. Scale(0) disables latency.
func (p LatencyProfile) Scale(factor float64) LatencyProfile {
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * factor)
	}
	return LatencyProfile{
		List:        scale(p.List),
		Get:         scale(p.Get),
		Featured:    scale(p.Featured),
		NewArrivals: scale(p.NewArrivals),
		Related:     scale(p.Related),
		Search:      scale(p.Search),
		Reference:   scale(p.Reference),
	}
}

type catalogService struct {
	catalog  *catalog.Catalog
	latency  LatencyProfile
	validate *validator.Validate
}

// NewCatalogService creates a CatalogService over the given catalog.
func NewCatalogService(cat *catalog.Catalog, latency LatencyProfile) CatalogService {
	return &catalogService{
		catalog:  cat,
		latency:  latency,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// suspend waits out the simulated delay, honoring context cancellation.
// In-flight work cannot otherwise be aborted; results are pure functions
// of static data, so an abandoned call is only a wasted computation.
func suspend(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ListProducts runs the filter/sort/paginate pipeline over the catalog.
// A structurally malformed spec fails fast with EINVALID; an inverted
// price range is a valid spec that matches nothing.
func (s *catalogService) ListProducts(ctx context.Context, spec domain.FilterSpec) (*domain.PageResult, error) {
	if err := s.validate.Struct(spec); err != nil {
		return nil, domain.WrapError(err, domain.EINVALID, "catalog.list", "invalid filter")
	}

	if err := suspend(ctx, s.latency.List); err != nil {
		return nil, err
	}

	result := catalog.Query(s.catalog.Products(), spec)
	return &result, nil
}

// GetProduct returns the product with the given id, or ErrProductNotFound.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if err := suspend(ctx, s.latency.Get); err != nil {
		return nil, err
	}

	p, ok := s.catalog.Product(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

// ListFeatured returns the top rated products, ties keeping catalog order.
func (s *catalogService) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	if err := suspend(ctx, s.latency.Featured); err != nil {
		return nil, err
	}

	// Sort a copy; the shared catalog slice must keep its order.
	products := append([]domain.Product(nil), s.catalog.Products()...)
	catalog.SortByRating(products)

	if len(products) > featuredCount {
		products = products[:featuredCount]
	}
	return products, nil
}

// ListNewArrivals returns exactly newArrivalCount products whenever the
// catalog has that many, preferring flagged-new products and backfilling
// with the rest in catalog order.
func (s *catalogService) ListNewArrivals(ctx context.Context) ([]domain.Product, error) {
	if err := suspend(ctx, s.latency.NewArrivals); err != nil {
		return nil, err
	}

	arrivals := make([]domain.Product, 0, newArrivalCount)
	for _, p := range s.catalog.Products() {
		if p.IsNew {
			arrivals = append(arrivals, p)
			if len(arrivals) == newArrivalCount {
				return arrivals, nil
			}
		}
	}

	for _, p := range s.catalog.Products() {
		if !p.IsNew {
			arrivals = append(arrivals, p)
			if len(arrivals) == newArrivalCount {
				break
			}
		}
	}
	return arrivals, nil
}

// ListRelated returns up to limit products related to id: same category
// first, then same brand in a different category. An unknown id falls
// back to the head of the catalog rather than erroring.
func (s *catalogService) ListRelated(ctx context.Context, id string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	if err := suspend(ctx, s.latency.Related); err != nil {
		return nil, err
	}

	products := s.catalog.Products()

	source, ok := s.catalog.Product(id)
	if !ok {
		if len(products) > limit {
			products = products[:limit]
		}
		return append([]domain.Product(nil), products...), nil
	}

	related := make([]domain.Product, 0, limit)
	for _, p := range products {
		if p.ID != id && p.CategoryID == source.CategoryID {
			related = append(related, p)
			if len(related) == limit {
				return related, nil
			}
		}
	}

	for _, p := range products {
		if p.ID != id && p.CategoryID != source.CategoryID && p.BrandID == source.BrandID {
			related = append(related, p)
			if len(related) == limit {
				break
			}
		}
	}
	return related, nil
}

// Search matches the query case-insensitively against product names and
// descriptions. A blank query is an empty result, not an error.
func (s *catalogService) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	if err := suspend(ctx, s.latency.Search); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return &domain.SearchResult{Items: []domain.Product{}, TotalItems: 0}, nil
	}

	items := make([]domain.Product, 0)
	total := 0
	for _, p := range s.catalog.Products() {
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		total++
		if len(items) < searchResultCap {
			items = append(items, p)
		}
	}

	return &domain.SearchResult{Items: items, TotalItems: total}, nil
}

// ListCategories returns the category reference data.
func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if err := suspend(ctx, s.latency.Reference); err != nil {
		return nil, err
	}
	return s.catalog.Categories(), nil
}

// ListBrands returns the brand reference data.
func (s *catalogService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	if err := suspend(ctx, s.latency.Reference); err != nil {
		return nil, err
	}
	return s.catalog.Brands(), nil
}
