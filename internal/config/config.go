package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Public site (canonical URLs, redirects, image resolution)
	SiteURL string

	// Content store
	DBDriver     string
	DBConnection string

	// Seed tool
	ContentPath string

	// Preview responses
	CacheMaxAge time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Nuage Studio"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "8090"),

		// Required: the human-facing site this service redirects to and
		// resolves relative image URLs against
		SiteURL: strings.TrimSuffix(envRequired("SITE_URL"), "/"),

		// Content store. Serving previews without a reachable store is
		// pointless, so a missing DSN refuses to start.
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envRequired("DB_CONNECTION"),

		ContentPath: envString("CONTENT_PATH", "content"),

		CacheMaxAge: envDuration("CACHE_MAX_AGE", time.Hour),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
