package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Gateway   GatewayConfig
	Cache     CacheConfig
	Advisory  AdvisoryConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// GatewayConfig holds the upstream signal/price service configuration
type GatewayConfig struct {
	BaseURL string
}

// CacheConfig holds cache-store configuration. Backend selects the KV
// implementation; EncryptionKey, when set, enables fernet encryption of
// payloads at rest.
type CacheConfig struct {
	Backend       string // "sqlite", "redis", or "memory"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	EncryptionKey string
}

// AdvisoryConfig holds defaults for the trading advisory engine
type AdvisoryConfig struct {
	DefaultCapital float64
	LookbackDays   int
}

// SchedulerConfig holds the background cache-refresh configuration.
// WatchSymbols and WatchModels define the (symbol, model) pairs warmed after
// the daily signal cutoff.
type SchedulerConfig struct {
	Enabled      bool
	WatchSymbols []string
	WatchModels  []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	defaultCapital, err := strconv.ParseFloat(getEnv("ADVISORY_DEFAULT_CAPITAL", "1000000"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ADVISORY_DEFAULT_CAPITAL: %w", err)
	}

	lookbackDays, err := strconv.Atoi(getEnv("ADVISORY_LOOKBACK_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADVISORY_LOOKBACK_DAYS: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/trading_advisor.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Gateway: GatewayConfig{
			BaseURL: getEnv("GATEWAY_BASE_URL", "http://localhost:8000"),
		},
		Cache: CacheConfig{
			Backend:       getEnv("CACHE_BACKEND", "sqlite"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			EncryptionKey: getEnv("CACHE_ENCRYPTION_KEY", ""),
		},
		Advisory: AdvisoryConfig{
			DefaultCapital: defaultCapital,
			LookbackDays:   lookbackDays,
		},
		Scheduler: SchedulerConfig{
			Enabled:      getEnv("SCHEDULER_ENABLED", "true") == "true",
			WatchSymbols: splitList(getEnv("WATCH_SYMBOLS", "")),
			WatchModels:  splitList(getEnv("WATCH_MODELS", "a2c,marl")),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList parses a comma-separated list, dropping empty items.
func splitList(s string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
