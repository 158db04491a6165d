package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Store
	StoreDriver   string // "postgres" or "memory"
	DBUrl         string
	ContactsTable string
	DBMaxConns    int32
	// Frontend
	PublicDir   string
	FrontendURL string // extra CORS origin for a dev server on another port
	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
	// Server
	ShutdownTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", "postgres")),
		DBUrl:           getEnv("DATABASE_URL", ""),
		ContactsTable:   getEnv("CONTACTS_TABLE", "contacts"),
		DBMaxConns:      getEnvInt32("DB_MAX_CONNS", 10),
		PublicDir:       getEnv("PUBLIC_DIR", "public"),
		FrontendURL:     strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		LogFile:         getEnv("LOG_FILE", ""),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	if cfg.StoreDriver == "postgres" && cfg.DBUrl == "" {
		return nil, errors.New("DATABASE_URL is required when STORE_DRIVER=postgres")
	}
	if strings.TrimSpace(cfg.ContactsTable) == "" {
		return nil, errors.New("CONTACTS_TABLE must not be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt32 returns an integer environment variable or fallback if not set/invalid.
// Values outside the int32 range count as invalid.
func getEnvInt32(key string, fallback int32) int32 {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings such as "5s" or "1m30s"
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
