package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config is loaded once at startup and passed into the components that need
// it. Nothing reads the environment after Load returns.
type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	Session     SessionConfig
}

type SessionConfig struct {
	CookieName string
	ExpiryDays int
	// Secure is set outside development so the cookie only travels over TLS.
	Secure bool
}

func (s SessionConfig) Expiry() time.Duration {
	return time.Duration(s.ExpiryDays) * 24 * time.Hour
}

func Load() (Config, error) {
	env := getEnv("APP_ENV", "development")
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "claims_session"),
			ExpiryDays: getEnvInt("SESSION_EXPIRY_DAYS", 7),
			Secure:     env == "production",
		},
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.Session.ExpiryDays <= 0 {
		return Config{}, errors.New("SESSION_EXPIRY_DAYS must be positive")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
