package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDSN          string
	LogFile        string
	JWTSecret      string
	TokenTTL       time.Duration
	PaymentLatency time.Duration
	LoginLatency   time.Duration
}

func Load() Config {
	// .env is optional; env vars win either way.
	_ = godotenv.Load()

	cfg := Config{
		Port:           getenv("PORT", "8080"),
		DBDSN:          getenv("DB_DSN", "storefront.db"),
		LogFile:        getenv("LOG_FILE", ""),
		JWTSecret:      getenv("JWT_SECRET", ""),
		TokenTTL:       minutes("TOKEN_TTL_MIN", 8*time.Hour),
		PaymentLatency: millis("PAYMENT_LATENCY_MS", 2*time.Second),
		LoginLatency:   millis("LOGIN_LATENCY_MS", time.Second),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s TOKEN_TTL=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.TokenTTL)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func minutes(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return def
}

func millis(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return time.Duration(n) * time.Millisecond
		}
	}
	return def
}
