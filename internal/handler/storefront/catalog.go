package storefront

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/stridewear/storefront/internal/domain"
	"github.com/stridewear/storefront/internal/handler"
	"github.com/stridewear/storefront/internal/service"
)

var errInvalidLimit = domain.Invalid("related.parse", "limit must be an integer")

// CatalogHandler serves the product browsing endpoints.
type CatalogHandler struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog service.CatalogService, logger *slog.Logger) *CatalogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// List handles GET /api/products
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	spec, err := parseFilterSpec(r.URL.Query())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	result, err := h.catalog.ListProducts(ctx, spec)
	if err != nil {
		h.logger.Error("product list failed", "error", err)
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, result)
}

// Detail handles GET /api/products/{id}
func (h *CatalogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if id == "" {
		handler.NotFoundResponse(w, r)
		return
	}

	product, err := h.catalog.GetProduct(ctx, id)
	if err != nil {
		if !errors.Is(err, service.ErrProductNotFound) {
			h.logger.Error("product lookup failed", "error", err, "product_id", id)
		}
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, product)
}

// Related handles GET /api/products/{id}/related
func (h *CatalogHandler) Related(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			handler.ErrorResponse(w, r, errInvalidLimit)
			return
		}
		limit = n
	}

	products, err := h.catalog.ListRelated(ctx, id, limit)
	if err != nil {
		h.logger.Error("related products failed", "error", err, "product_id", id)
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": products})
}

// Featured handles GET /api/products/featured
func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListFeatured(r.Context())
	if err != nil {
		h.logger.Error("featured products failed", "error", err)
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": products})
}

// NewArrivals handles GET /api/products/new-arrivals
func (h *CatalogHandler) NewArrivals(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListNewArrivals(r.Context())
	if err != nil {
		h.logger.Error("new arrivals failed", "error", err)
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": products})
}

// Search handles GET /api/search?q=
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error("search failed", "error", err)
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, result)
}

// Categories handles GET /api/categories
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("category list failed", "error", err)
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": categories})
}

// Brands handles GET /api/brands
func (h *CatalogHandler) Brands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalog.ListBrands(r.Context())
	if err != nil {
		h.logger.Error("brand list failed", "error", err)
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": brands})
}
