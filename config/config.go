package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries every tunable the server needs. It is built once in main and
// passed down explicitly; nothing else reads the environment.
type Config struct {
	Port        string
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret   string
	AdminAPIKey string

	// Shipping: orders at or above the threshold ship free, below it a flat
	// fee applies.
	FreeShippingThreshold float64
	ShippingFee           float64

	// ReferralTTL is how long a referral attribution sticks to a shopper.
	ReferralTTL time.Duration
	// GuestTTL bounds how long abandoned guest carts/wishlists are kept.
	GuestTTL time.Duration
	// MergeSettleDelay papers over the store's read-after-write latency
	// between a wishlist merge and the reload that confirms it.
	MergeSettleDelay time.Duration

	// Email
	EmailProvider string // "resend" or "log"
	ResendAPIKey  string
	EmailFrom     string
	EmailReplyTo  string

	PostcodeAPIBase string

	// Per-client rate limit on auth endpoints.
	AuthRatePerSecond float64
	AuthRateBurst     int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:                  envStr("PORT", "8080"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		RedisAddr:             envStr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:               envInt("REDIS_DB", 0),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		AdminAPIKey:           os.Getenv("ADMIN_API_KEY"),
		FreeShippingThreshold: envFloat("FREE_SHIPPING_THRESHOLD", 50),
		ShippingFee:           envFloat("SHIPPING_FEE", 4.99),
		ReferralTTL:           envDuration("REFERRAL_TTL", 30*24*time.Hour),
		GuestTTL:              envDuration("GUEST_TTL", 30*24*time.Hour),
		MergeSettleDelay:      envDuration("MERGE_SETTLE_DELAY", 500*time.Millisecond),
		EmailProvider:         envStr("EMAIL_PROVIDER", "log"),
		ResendAPIKey:          os.Getenv("RESEND_API_KEY"),
		EmailFrom:             envStr("EMAIL_FROM", "GirlSecret <orders@girlsecret.co.uk>"),
		EmailReplyTo:          os.Getenv("EMAIL_REPLY_TO"),
		PostcodeAPIBase:       envStr("POSTCODE_API_BASE", "https://api.postcodes.io"),
		AuthRatePerSecond:     envFloat("AUTH_RATE_PER_SECOND", 1),
		AuthRateBurst:         envInt("AUTH_RATE_BURST", 5),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
