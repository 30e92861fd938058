package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	Environment string
	HTTPAddr    string
	LogLevel    string

	AuthUsername     string
	AuthPassword     string
	AuthPasswordHash string
	SessionTTL       time.Duration

	HistoryFile string
	ArchiveDB   string
	PDFFontPath string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "quickinvoice"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		LogLevel:    getenv("LOG_LEVEL", "info"),

		// The default credential pair mirrors the original tool. It is a
		// placeholder, not a security boundary; set AUTH_PASSWORD_HASH to an
		// Argon2id hash to avoid a plaintext secret in the environment.
		AuthUsername:     getenv("AUTH_USERNAME", "admin"),
		AuthPassword:     getenv("AUTH_PASSWORD", "1234"),
		AuthPasswordHash: strings.TrimSpace(getenv("AUTH_PASSWORD_HASH", "")),
		SessionTTL:       getenvDuration("SESSION_TTL", 12*time.Hour),

		HistoryFile: getenv("HISTORY_FILE", "invoices.csv"),
		ArchiveDB:   getenv("ARCHIVE_DB", "quickinvoice.db"),
		PDFFontPath: getenv("PDF_FONT_PATH", "assets/fonts/DejaVuSans.ttf"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}
