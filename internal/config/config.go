package config

import (
	"fmt"
	"os"
	"time"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP     HTTPConfig
	Storage  StorageConfig
	Matching MatchingConfig
	Logging  LoggingConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Address           string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// StorageConfig locates the SQLite database file.
type StorageConfig struct {
	Path string
}

// MatchingConfig locates the optional scoring-config override file.
type MatchingConfig struct {
	ConfigPath string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

const (
	defaultAddress           = ":8080"
	defaultDBPath            = "./investlens.db"
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 8 * time.Second
	defaultLoggingLevel      = "info"
	defaultLoggingFormat     = "text"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			Address:           valueOrDefault("API_ADDRESS", defaultAddress),
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			ShutdownTimeout:   defaultShutdownTimeout,
		},
		Storage: StorageConfig{
			Path: valueOrDefault("DB_PATH", defaultDBPath),
		},
		Matching: MatchingConfig{
			ConfigPath: valueOrDefault("MATCHING_CONFIG_PATH", "configs/scoring.json"),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		},
	}

	if v := os.Getenv("SERVER_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SERVER_SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.HTTP.ShutdownTimeout = d
	}

	return cfg, nil
}

func valueOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
