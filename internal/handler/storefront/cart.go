package storefront

import (
	"log/slog"
	"net/http"

	"github.com/stridewear/storefront/internal/cookie"
	"github.com/stridewear/storefront/internal/domain"
	"github.com/stridewear/storefront/internal/handler"
	"github.com/stridewear/storefront/internal/service"
)

// CartHandler handles all cart-related storefront routes.
type CartHandler struct {
	carts   service.CartService
	quotes  service.QuoteService
	cookies *cookie.Config
	logger  *slog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts service.CartService, quotes service.QuoteService, cookies *cookie.Config, logger *slog.Logger) *CartHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CartHandler{
		carts:   carts,
		quotes:  quotes,
		cookies: cookies,
		logger:  logger,
	}
}

// session resolves the request's cart session, minting one and setting
// the cookie when needed.
func (h *CartHandler) session(w http.ResponseWriter, r *http.Request) (string, error) {
	sessionID := GetSessionIDFromCookie(r)

	_, newSessionID, err := h.carts.GetOrCreateCart(r.Context(), sessionID)
	if err != nil {
		return "", err
	}
	if newSessionID != sessionID {
		SetSessionCookie(w, newSessionID, h.cookies)
	}
	return newSessionID, nil
}

// View handles GET /api/cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.session(w, r)
	if err != nil {
		h.logger.Error("cart session failed", "error", err)
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.carts.GetSummary(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("cart summary failed", "error", err)
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, summary)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if body.ProductID == "" {
		handler.ErrorResponse(w, r, domain.Invalid("cart.add", "product_id is required"))
		return
	}

	sessionID, err := h.session(w, r)
	if err != nil {
		h.logger.Error("cart session failed", "error", err)
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.carts.AddItem(r.Context(), sessionID, body.ProductID, body.Quantity)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, summary)
}

// UpdateItem handles PUT /api/cart/items/{productID}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productID")

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	sessionID := GetSessionIDFromCookie(r)
	if sessionID == "" {
		handler.ErrorResponse(w, r, service.ErrCartNotFound)
		return
	}

	summary, err := h.carts.UpdateItemQuantity(r.Context(), sessionID, productID, body.Quantity)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, summary)
}

// RemoveItem handles DELETE /api/cart/items/{productID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productID")

	sessionID := GetSessionIDFromCookie(r)
	if sessionID == "" {
		handler.ErrorResponse(w, r, service.ErrCartNotFound)
		return
	}

	summary, err := h.carts.RemoveItem(r.Context(), sessionID, productID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, summary)
}

// Clear handles DELETE /api/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionIDFromCookie(r)
	if sessionID == "" {
		handler.ErrorResponse(w, r, service.ErrCartNotFound)
		return
	}

	if err := h.carts.ClearCart(r.Context(), sessionID); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.carts.GetSummary(r.Context(), sessionID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, summary)
}

// ApplyPromo handles POST /api/cart/promo
func (h *CartHandler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	sessionID, err := h.session(w, r)
	if err != nil {
		h.logger.Error("cart session failed", "error", err)
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.carts.ApplyPromo(r.Context(), sessionID, body.Code)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, summary)
}

// Quote handles GET /api/cart/quote
func (h *CartHandler) Quote(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.session(w, r)
	if err != nil {
		h.logger.Error("cart session failed", "error", err)
		handler.ErrorResponse(w, r, err)
		return
	}

	quote, err := h.quotes.Quote(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("quote failed", "error", err)
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, quote)
}
