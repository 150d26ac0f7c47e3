package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the process settings of a solution binary.
type Config struct {
	Strategy         string
	Workers          int
	Newline          bool
	ProcessRemaining bool
	Input            string
	Log              LogConfig
}

// LogConfig selects the slog handler written to stderr.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Strategy:         getEnv("JAM_STRATEGY", "sequential"),
		Workers:          getEnvInt("JAM_WORKERS", 0),
		Newline:          getEnvBool("JAM_NEWLINE", false),
		ProcessRemaining: getEnvBool("JAM_PROCESS_REMAINING", true),
		Input:            getEnv("JAM_INPUT", ""),
		Log:              loadLogConfig(),
	}
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Level:  getEnv("JAM_LOG_LEVEL", "warn"),
		Format: getEnv("JAM_LOG_FORMAT", "text"),
	}
}

// SlogLevel maps the configured level name to a slog.Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.Level)
	}
	return level, nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
