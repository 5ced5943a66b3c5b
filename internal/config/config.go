package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the pwgen-api server settings. It is read from the
// environment only.
type Config struct {
	Port           string
	Env            string
	LogLevel       slog.Level
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getLevel("LOG_LEVEL", slog.LevelInfo),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("ignoring invalid number setting", "key", key, "value", v)
		return fallback
	}
	return f
}

func getLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
		slog.Warn("ignoring invalid log level", "key", key, "value", v)
		return fallback
	}
	return level
}
