package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/stridewear/storefront/internal"
	"github.com/stridewear/storefront/internal/catalog"
	"github.com/stridewear/storefront/internal/cookie"
	"github.com/stridewear/storefront/internal/handler/storefront"
	"github.com/stridewear/storefront/internal/middleware"
	"github.com/stridewear/storefront/internal/router"
	"github.com/stridewear/storefront/internal/routes"
	"github.com/stridewear/storefront/internal/service"
	"github.com/stridewear/storefront/internal/shipping"
	"github.com/stridewear/storefront/internal/tax"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Build the catalog. Generation is deterministic, so every start
	// serves the same data.
	cat := catalog.Generate()
	logger.Info("Catalog generated",
		"products", cat.Len(),
		"categories", len(cat.Categories()),
		"brands", len(cat.Brands()),
	)

	// Simulated fetch latency
	latency := service.LatencyProfile{}
	if cfg.Latency.Enabled {
		latency = service.DefaultLatency().Scale(cfg.Latency.Scale)
		logger.Info("Simulated latency enabled", "scale", cfg.Latency.Scale)
	}

	// Initialize services
	catalogService := service.NewCatalogService(cat, latency)

	cartStore := service.NewCartStore(cat, cfg.Cart.TTL)
	defer cartStore.Close()
	logger.Info("Cart store initialized", "ttl", cfg.Cart.TTL)

	// Shipping provider (flat rate with a free-shipping threshold)
	shippingProvider := shipping.NewFlatRateProvider(shipping.FlatRate{
		ServiceName: "Standard Shipping",
		ServiceCode: "standard",
		CostCents:   cfg.Shipping.FlatRateCents,
		DaysMin:     3,
		DaysMax:     7,
	}, cfg.Shipping.FreeOverCents)

	// Tax calculator
	taxCalculator := tax.NewPercentageCalculator(cfg.Tax.Rate)

	quoteService := service.NewQuoteService(cartStore, shippingProvider, taxCalculator)

	// Cookie settings
	cookieConfig := cookie.NewConfig(cfg.Env == "prod")

	// ==========================================================================
	// Initialize middleware
	// ==========================================================================

	metrics := middleware.NewMetrics("storefront")

	rateLimiterConfig := middleware.DefaultRateLimiterConfig()
	rateLimiterConfig.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
	rateLimiterConfig.BurstSize = cfg.RateLimit.Burst
	defaultRateLimiter := middleware.NewRateLimiter(rateLimiterConfig)
	defer defaultRateLimiter.Stop()

	checkoutRateLimiter := middleware.NewRateLimiter(middleware.StrictRateLimiterConfig())
	defer checkoutRateLimiter.Stop()

	storefrontDeps := routes.StorefrontDeps{
		CatalogHandler:  storefront.NewCatalogHandler(catalogService, logger),
		CartHandler:     storefront.NewCartHandler(cartStore, quoteService, cookieConfig, logger),
		CheckoutHandler: storefront.NewCheckoutHandler(),
		CheckoutLimiter: checkoutRateLimiter.Middleware,
	}

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		middleware.WithClientIP(),
		metrics.Middleware,
		router.CORS(cfg.CORS.AllowedOrigins),
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		defaultRateLimiter.Middleware,
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
	)

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterStorefrontRoutes(r, storefrontDeps)

	// ==========================================================================
	// Start server
	// ==========================================================================

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront server", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
