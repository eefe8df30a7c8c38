package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/stridewear/storefront/internal/catalog"
	"github.com/stridewear/storefront/internal/domain"
)

// Promo codes honored by ApplyPromo. WELCOME10 takes 10% off the
// subtotal; FREESHIP waives the shipping charge.
const (
	PromoWelcome10 = "WELCOME10"
	PromoFreeShip  = "FREESHIP"
)

// CartService provides business logic for shopping cart operations.
// Carts are session-scoped and held in memory only; they vanish on
// process restart or when idle past the store's TTL.
type CartService interface {
	// GetOrCreateCart returns the session id to use for subsequent
	// calls, minting a new session when sessionID is empty or unknown.
	GetOrCreateCart(ctx context.Context, sessionID string) (*domain.Cart, string, error)

	// GetSummary returns the cart with items and derived totals.
	// Returns ErrCartNotFound for an unknown session.
	GetSummary(ctx context.Context, sessionID string) (*domain.CartSummary, error)

	// AddItem adds a product to the cart, incrementing the existing
	// line's quantity if one is already present.
	AddItem(ctx context.Context, sessionID, productID string, quantity int) (*domain.CartSummary, error)

	// UpdateItemQuantity sets a line's quantity. A quantity of zero or
	// less removes the line.
	UpdateItemQuantity(ctx context.Context, sessionID, productID string, quantity int) (*domain.CartSummary, error)

	// RemoveItem deletes a line. Removing an absent line is a no-op.
	RemoveItem(ctx context.Context, sessionID, productID string) (*domain.CartSummary, error)

	// ApplyPromo attaches a promo code to the cart for quoting.
	ApplyPromo(ctx context.Context, sessionID, code string) (*domain.CartSummary, error)

	// ClearCart removes all lines (and any promo code).
	ClearCart(ctx context.Context, sessionID string) error
}

// cartEntry is the authoritative per-session state. Lines keep insertion
// order so summaries render stably.
type cartEntry struct {
	lines      []domain.CartLine
	promoCode  string
	createdAt  time.Time
	updatedAt  time.Time
	lastAccess time.Time
}

// CartStore is the in-memory CartService implementation. All mutations
// run inside a single critical section with no suspension points, so no
// two mutations can interleave mid-update.
type CartStore struct {
	catalog *catalog.Catalog
	ttl     time.Duration

	mu    sync.RWMutex
	carts map[string]*cartEntry

	stop chan struct{}
	once sync.Once
}

// NewCartStore creates a cart store over the given catalog. Carts idle
// longer than ttl are swept by a background janitor; ttl <= 0 disables
// sweeping. Call Close to stop the janitor.
func NewCartStore(cat *catalog.Catalog, ttl time.Duration) *CartStore {
	s := &CartStore{
		catalog: cat,
		ttl:     ttl,
		carts:   make(map[string]*cartEntry),
		stop:    make(chan struct{}),
	}

	if ttl > 0 {
		go s.sweep()
	}

	return s
}

// Close stops the TTL janitor.
func (s *CartStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

// sweep periodically drops carts idle past the TTL.
func (s *CartStore) sweep() {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, entry := range s.carts {
				if now.Sub(entry.lastAccess) > s.ttl {
					delete(s.carts, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

// GetOrCreateCart retrieves an existing cart or creates a new session
// and cart. Returns the cart, session ID (new or existing), and any error.
func (s *CartStore) GetOrCreateCart(ctx context.Context, sessionID string) (*domain.Cart, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID != "" {
		if entry, ok := s.carts[sessionID]; ok {
			entry.lastAccess = time.Now()
			return cartView(sessionID, entry), sessionID, nil
		}
	}

	if sessionID == "" {
		sessionID = GenerateSessionID()
	}

	now := time.Now()
	entry := &cartEntry{createdAt: now, updatedAt: now, lastAccess: now}
	s.carts[sessionID] = entry

	return cartView(sessionID, entry), sessionID, nil
}

// GetSummary retrieves the cart with all items and calculated totals.
func (s *CartStore) GetSummary(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.carts[sessionID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return s.summarize(sessionID, entry), nil
}

// AddItem adds a product to the cart or increments an existing line.
// Stock is advisory catalog data; the store enforces no upper bound.
func (s *CartStore) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*domain.CartSummary, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if _, ok := s.catalog.Product(productID); !ok {
		return nil, ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[sessionID]
	if !ok {
		return nil, ErrCartNotFound
	}

	found := false
	for i := range entry.lines {
		if entry.lines[i].ProductID == productID {
			entry.lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		entry.lines = append(entry.lines, domain.CartLine{ProductID: productID, Quantity: quantity})
	}
	entry.touch()

	return s.summarize(sessionID, entry), nil
}

// UpdateItemQuantity sets the quantity of a cart line.
// A quantity of zero or less removes the line.
func (s *CartStore) UpdateItemQuantity(ctx context.Context, sessionID, productID string, quantity int) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[sessionID]
	if !ok {
		return nil, ErrCartNotFound
	}

	if quantity <= 0 {
		entry.removeLine(productID)
	} else {
		for i := range entry.lines {
			if entry.lines[i].ProductID == productID {
				entry.lines[i].Quantity = quantity
				break
			}
		}
	}
	entry.touch()

	return s.summarize(sessionID, entry), nil
}

// RemoveItem removes a product line from the cart. Absent lines are a
// no-op, not an error.
func (s *CartStore) RemoveItem(ctx context.Context, sessionID, productID string) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[sessionID]
	if !ok {
		return nil, ErrCartNotFound
	}

	entry.removeLine(productID)
	entry.touch()

	return s.summarize(sessionID, entry), nil
}

// ApplyPromo validates and attaches a promo code to the cart.
func (s *CartStore) ApplyPromo(ctx context.Context, sessionID, code string) (*domain.CartSummary, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code != PromoWelcome10 && code != PromoFreeShip {
		return nil, ErrInvalidPromoCode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[sessionID]
	if !ok {
		return nil, ErrCartNotFound
	}

	entry.promoCode = code
	entry.touch()

	return s.summarize(sessionID, entry), nil
}

// ClearCart removes all lines and any promo code from the cart.
func (s *CartStore) ClearCart(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[sessionID]
	if !ok {
		return ErrCartNotFound
	}

	entry.lines = nil
	entry.promoCode = ""
	entry.touch()

	return nil
}

func (e *cartEntry) touch() {
	now := time.Now()
	e.updatedAt = now
	e.lastAccess = now
}

func (e *cartEntry) removeLine(productID string) {
	for i := range e.lines {
		if e.lines[i].ProductID == productID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			return
		}
	}
}

func cartView(sessionID string, e *cartEntry) *domain.Cart {
	return &domain.Cart{
		SessionID: sessionID,
		PromoCode: e.promoCode,
		CreatedAt: e.createdAt,
		UpdatedAt: e.updatedAt,
	}
}

// summarize joins lines with product data and derives totals. Caller
// must hold at least a read lock.
func (s *CartStore) summarize(sessionID string, e *cartEntry) *domain.CartSummary {
	items := make([]domain.CartItem, 0, len(e.lines))
	var subtotal int64
	var itemCount int

	for _, line := range e.lines {
		p, ok := s.catalog.Product(line.ProductID)
		if !ok {
			// AddItem checks existence and catalog data is immutable,
			// so a dangling line cannot normally happen.
			continue
		}

		unit := p.DiscountedUnitCents()
		lineSubtotal := unit * int64(line.Quantity)
		subtotal += lineSubtotal
		itemCount += line.Quantity

		items = append(items, domain.CartItem{
			ProductID:      p.ID,
			ProductName:    p.Name,
			ImageURL:       p.ImageURL,
			Quantity:       line.Quantity,
			UnitPriceCents: unit,
			Discount:       p.Discount,
			LineSubtotal:   lineSubtotal,
		})
	}

	return &domain.CartSummary{
		Cart:          *cartView(sessionID, e),
		Items:         items,
		SubtotalCents: subtotal,
		ItemCount:     itemCount,
	}
}
