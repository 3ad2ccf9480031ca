package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/genpass/genpass-go/internal/crypto"
)

type Config struct {
	Length    int
	LogLevel  string
	LogFormat string

	Addr        string
	JWTSecret   string
	TokenExpiry time.Duration
	RateRPS     float64
	RateBurst   int
}

func Load() Config {
	return Config{
		Length:      getEnvInt("GENPASS_LENGTH", crypto.DefaultLength),
		LogLevel:    strings.ToLower(getEnv("GENPASS_LOG_LEVEL", "warn")),
		LogFormat:   strings.ToLower(getEnv("GENPASS_LOG_FORMAT", "text")),
		Addr:        getEnv("GENPASS_ADDR", ":8080"),
		JWTSecret:   getEnv("GENPASS_JWT_SECRET", ""),
		TokenExpiry: getEnvDuration("GENPASS_TOKEN_EXPIRY", 24*time.Hour),
		RateRPS:     getEnvFloat("GENPASS_RATE_RPS", 5),
		RateBurst:   getEnvInt("GENPASS_RATE_BURST", 10),
	}
}

// NewLogger builds a slog.Logger writing to w. Unknown levels fall back to
// warn and unknown formats to text.
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
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
	if err != nil {
		slog.Warn("ignoring invalid integer", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("ignoring invalid number", "key", key, "value", v)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("ignoring invalid duration", "key", key, "value", v)
		return fallback
	}
	return d
}
