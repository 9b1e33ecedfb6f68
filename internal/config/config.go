package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr            string
	MongoURI        string
	MongoDatabase   string
	PostCollection  string
	UserCollection  string
	Timeout         time.Duration
	ServerLog       *log.Logger
	JWTConfigs      []JWTConfig
	JWTAudience     string
	AllowedOrigins  []string
	ExploreCacheTTL time.Duration
	SearchCacheTTL  time.Duration
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	exploreTTL := 15 * time.Minute
	if raw := strings.TrimSpace(os.Getenv("EXPLORE_CACHE_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			exploreTTL = parsed
		}
	}

	searchTTL := 5 * time.Minute
	if raw := strings.TrimSpace(os.Getenv("SEARCH_CACHE_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			searchTTL = parsed
		}
	}

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_JWT_ISSUER", "bitemap-auth"),
			Secret: []byte(secret),
		})
	}

	serverLog := log.New(os.Stdout, "[bitemap-api] ", log.LstdFlags|log.Lshortfile)
	if len(jwtConfigs) == 0 {
		serverLog.Printf("AUTH_JWT_SECRET not configured; category feed serves anonymous viewers only")
	}

	cfg := Config{
		Addr:            envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:        envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:   envOrDefault("MONGO_DB", "bitemap"),
		PostCollection:  envOrDefault("POST_COLLECTION", "posts"),
		UserCollection:  envOrDefault("USER_COLLECTION", "users"),
		Timeout:         timeout,
		ServerLog:       serverLog,
		JWTConfigs:      jwtConfigs,
		JWTAudience:     strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE")),
		AllowedOrigins:  parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		ExploreCacheTTL: exploreTTL,
		SearchCacheTTL:  searchTTL,
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
