package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultDatabaseURL = "guesthouse.db"
	defaultListenAddr  = ":8080"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
	defaultAutoMigrate = "true"
)

type Config struct {
	DatabaseURL string
	ListenAddr  string
	JWTSecret   string
	JWTTTL      time.Duration
	AutoMigrate bool
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		ListenAddr:  strings.TrimSpace(getEnv("LISTEN_ADDR", defaultListenAddr)),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		AutoMigrate: parseBoolEnv("AUTO_MIGRATE", defaultAutoMigrate),
	}

	ttl, err := parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.JWTTTL = ttl

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be > 0")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}

func parseBoolEnv(key, fallback string) bool {
	raw := getEnv(key, fallback)
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return b
}
