package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	DatabaseDSN   string
	JWTSecret     string
	JWTExpiry     time.Duration
	UploadDir     string
	MaxUploadSize int64
}

// Load reads configuration from the environment, falling back to a local
// .env file when present and then to development defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "3000"),
		Env:           getEnv("ENV", "development"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "./linknest.db"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:     24 * time.Hour,
		UploadDir:     getEnv("UPLOAD_DIR", "static/uploads"),
		MaxUploadSize: getEnvInt64("MAX_UPLOAD_SIZE", 5*1024*1024),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
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

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
