package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr          string
	CatalogPath   string
	LettersDir    string
	CORSOrigin    string
	DraftDebounce time.Duration
	SubmitCooldown time.Duration
	// Redis Configuration (primary draft/identity store)
	RedisURL string
	// PostgreSQL Configuration (durable fallback store)
	DatabaseURL   string
	MigrationsDir string
	// Meilisearch Configuration
	MeiliURL       string
	MeiliMasterKey string
	// MinIO Configuration - letter bodies served from a bucket when set
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

func Load() Config {
	return Config{
		Addr:           getenv("API_ADDR", ":8686"),
		CatalogPath:    getenv("SOAPBOX_CATALOG_PATH", "./data/letters-config.json"),
		LettersDir:     getenv("SOAPBOX_LETTERS_DIR", "./data/letters"),
		CORSOrigin:     getenv("SOAPBOX_CORS_ORIGIN", "*"),
		DraftDebounce:  time.Duration(getenvInt("SOAPBOX_DRAFT_DEBOUNCE_MS", 400)) * time.Millisecond,
		SubmitCooldown: time.Duration(getenvInt("SOAPBOX_SUBMIT_COOLDOWN_MS", 2000)) * time.Millisecond,
		RedisURL:       getenv("REDIS_URL", "redis://localhost:6379/0"),
		// Postgres - empty by default, only used when Redis is not configured
		DatabaseURL:   getenv("DATABASE_URL", ""),
		MigrationsDir: getenv("SOAPBOX_MIGRATIONS_DIR", "./db/migrations"),
		MeiliURL:       getenv("MEILI_URL", ""),
		MeiliMasterKey: getenv("MEILI_MASTER_KEY", ""),
		// MinIO - empty by default, letter bodies read from LettersDir if not configured
		MinioEndpoint:  getenv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getenv("MINIO_BUCKET", "soapbox-letters"),
		MinioUseSSL:    getenv("MINIO_USE_SSL", "") == "true",
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
