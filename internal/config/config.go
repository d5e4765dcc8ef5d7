package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Data
	DataDir    string
	ContentDir string

	// Auth: the shared admin API key. When unset every admin request is
	// rejected; the server still starts so public reads keep working.
	AdminAPIKey string

	// SEO
	SiteURL string

	// Response cache
	CacheTTL time.Duration

	// CORS
	AllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		DataDir:     getEnv("DATA_DIR", "data"),
		ContentDir:  getEnv("CONTENT_DIR", "content"),
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		SiteURL:     getEnv("SITE_URL", "https://destiny-rising-builds.vercel.app"),
		CacheTTL:    time.Duration(getEnvInt("CACHE_TTL_MINUTES", 5)) * time.Minute,
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS",
			"http://localhost:3000,https://destiny-rising-builds.vercel.app")),
	}

	if cfg.AdminAPIKey == "" {
		log.Println("WARN [config.Load] ADMIN_API_KEY not set; admin endpoints will reject all requests")
	}

	return cfg, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
