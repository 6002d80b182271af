package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// RendererConfig controls the headless-browser layout engine.
type RendererConfig struct {
	ChromePath    string
	RenderTimeout time.Duration
}

// LimitsConfig controls request throttling and response caching.
type LimitsConfig struct {
	RenderPerMinute  int
	GeneralPerMinute int
	MaxRequestBytes  int64
	CacheTTL         time.Duration
}

type AppConfig struct {
	Port           string
	Environment    string
	AllowedOrigins []string
	Renderer       RendererConfig
	Limits         LimitsConfig
}

func GetAppConfig() AppConfig {
	return AppConfig{
		Port:           getEnv("PORT", "8081"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		Renderer: RendererConfig{
			ChromePath:    getEnv("CHROME_PATH", ""),
			RenderTimeout: time.Duration(getEnvInt("RENDER_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Limits: LimitsConfig{
			RenderPerMinute:  getEnvInt("RATE_LIMIT_RENDER_PER_MINUTE", 10),
			GeneralPerMinute: getEnvInt("RATE_LIMIT_GENERAL_PER_MINUTE", 60),
			MaxRequestBytes:  int64(getEnvInt("MAX_REQUEST_BYTES", 1<<20)),
			CacheTTL:         time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
