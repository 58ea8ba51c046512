package config

import (
	"os"
	"strconv"
	"time"
)

type DashboardConfig struct {
	EdgeFunctionsURL    string
	EdgeAPIKey          string
	EdgeTimeout         time.Duration
	DashboardCacheTTL   time.Duration
	DemoFallbackEnabled bool
	ReportMaxRows       int
	ImportMaxRows       int
	BadgeSize           int
	AvatarDir           string
}

func LoadDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		EdgeFunctionsURL:    getEnv("EDGE_FUNCTIONS_URL", "http://localhost:54321/functions/v1"),
		EdgeAPIKey:          getEnv("EDGE_API_KEY", ""),
		EdgeTimeout:         getEnvAsDuration("EDGE_TIMEOUT", 10*time.Second),
		DashboardCacheTTL:   getEnvAsDuration("DASHBOARD_CACHE_TTL", 2*time.Minute),
		DemoFallbackEnabled: getEnvAsBool("DASHBOARD_DEMO_FALLBACK", true),
		ReportMaxRows:       getEnvAsInt("REPORT_MAX_ROWS", 5000),
		ImportMaxRows:       getEnvAsInt("IMPORT_MAX_ROWS", 1000),
		BadgeSize:           getEnvAsInt("BADGE_QR_SIZE", 256),
		AvatarDir:           getEnv("AVATAR_DIR", "./static/avatars"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			return duration
		}
	}
	return defaultVal
}
