package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	LogLevel  string
	Port      uint16
	Latency   LatencyConfig
	Cart      CartConfig
	Shipping  ShippingConfig
	Tax       TaxConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

// LatencyConfig controls the simulated fetch delays.
type LatencyConfig struct {
	// Enabled turns the delays on. Off by default so local runs and
	// tests are instant; turn on to exercise client loading states.
	Enabled bool

	// Scale multiplies every delay. 1.0 is the standard profile.
	Scale float64
}

// CartConfig holds cart session tuning.
type CartConfig struct {
	// TTL is how long an idle cart survives before the janitor drops
	// it. Zero disables expiry.
	TTL time.Duration
}

// ShippingConfig holds the flat-rate shipping knobs, in cents.
type ShippingConfig struct {
	FlatRateCents int64
	FreeOverCents int64
}

// TaxConfig holds the percentage tax rate, e.g. 0.07 for 7%.
type TaxConfig struct {
	Rate float64
}

// CORSConfig lists origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig holds the per-client request limiter knobs.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnvInt("PORT", 3000),
		Latency: LatencyConfig{
			Enabled: getEnvBool("SIMULATED_LATENCY", false),
			Scale:   getEnvFloat("SIMULATED_LATENCY_SCALE", 1.0),
		},
		Cart: CartConfig{
			TTL: getEnvDuration("CART_TTL", 24*time.Hour),
		},
		Shipping: ShippingConfig{
			FlatRateCents: getEnvInt64("SHIPPING_FLAT_RATE_CENTS", 1000),
			FreeOverCents: getEnvInt64("SHIPPING_FREE_OVER_CENTS", 10000),
		},
		Tax: TaxConfig{
			Rate: getEnvFloat("TAX_RATE", 0.07),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{getEnv("CORS_ALLOWED_ORIGIN", "*")},
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvFloat("RATE_LIMIT_RPS", 10),
			Burst:             int(getEnvInt64("RATE_LIMIT_BURST", 20)),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if cfg.RateLimit.RequestsPerSecond <= 0 {
		slog.Default().Warn("Invalid rate limit. Using default: 10 rps", slog.Float64("value", cfg.RateLimit.RequestsPerSecond))
		cfg.RateLimit.RequestsPerSecond = 10
	}
	if cfg.RateLimit.Burst <= 0 {
		slog.Default().Warn("Invalid rate limit burst. Using default: 20", slog.Int("value", cfg.RateLimit.Burst))
		cfg.RateLimit.Burst = 20
	}

	if cfg.Latency.Scale < 0 {
		slog.Default().Warn("Negative latency scale. Using default: 1.0", slog.Float64("value", cfg.Latency.Scale))
		cfg.Latency.Scale = 1.0
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		var intValue int64
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		var floatValue float64
		if _, err := fmt.Sscanf(value, "%f", &floatValue); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
