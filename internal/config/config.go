package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all process configuration. It is loaded once at startup
// and passed by reference to the services that need it.
type Config struct {
	Port           string
	Env            string
	DatabaseDSN    string
	JWTSecret      string
	JWTAlgorithm   string
	TokenTTL       time.Duration
	GeminiAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	AllowedOrigins []string
}

var supportedAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "file:reviews.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"),
		JWTSecret:     getEnv("SECRET_KEY", "dev-secret-change-in-production"),
		JWTAlgorithm:  getEnv("ALGORITHM", "HS256"),
		TokenTTL:      time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60)) * time.Minute,
		GeminiAPIKey:  os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS",
			"http://localhost:5173,http://127.0.0.1:5500")),
	}

	if cfg.GeminiAPIKey == "" {
		slog.Error("GOOGLE_API_KEY must be set")
		os.Exit(1)
	}

	if !supportedAlgorithms[cfg.JWTAlgorithm] {
		slog.Error("unsupported signing algorithm", "algorithm", cfg.JWTAlgorithm)
		os.Exit(1)
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("SECRET_KEY must be set in production environment")
		os.Exit(1)
	}

	return cfg
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
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer value", "key", key, "value", v)
		return fallback
	}
	return n
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
