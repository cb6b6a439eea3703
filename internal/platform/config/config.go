package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the service configuration read from the environment.
type Config struct {
	Port           string
	LogLevel       string
	LogFormat      string
	DatasetPath    string
	RouteOrderPath string // optional; empty means first-encounter order
	StrictRoute    bool   // fail when photos carry labels missing from the route order

	RouteLineMaxZoom   int
	HeadingMinZoom     int
	PhotoMarkerMinZoom int
	FlyZoom            int
}

// Load reads the .env file from the current working directory and sets
// environment variables. If .env does not exist, Load returns an error but
// callers can ignore it and use system env or defaults. Pass one or more paths
// to load from specific files (e.g. ".env"); with no paths, ".env" is used.
func Load(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	return godotenv.Load(paths...)
}

// FromEnv builds a Config from the environment, applying defaults.
func FromEnv() Config {
	return Config{
		Port:               GetEnv("PORT", "8080"),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		LogFormat:          GetEnv("LOG_FORMAT", "json"),
		DatasetPath:        GetEnv("PHOTO_DATASET", "./data/photo-data.json"),
		RouteOrderPath:     GetEnv("ROUTE_ORDER_FILE", ""),
		StrictRoute:        GetEnvBool("STRICT_ROUTE", false),
		RouteLineMaxZoom:   GetEnvInt("ROUTE_LINE_MAX_ZOOM", 9),
		HeadingMinZoom:     GetEnvInt("HEADING_MIN_ZOOM", 6),
		PhotoMarkerMinZoom: GetEnvInt("PHOTO_MARKER_MIN_ZOOM", 8),
		FlyZoom:            GetEnvInt("FLY_ZOOM", 15),
	}
}

// GetEnv returns the value of the environment variable named by key, or fallback
// if the variable is unset or empty.
func GetEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by key,
// or fallback if the variable is unset, empty, or not a valid integer.
func GetEnvInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return fallback
}

// GetEnvBool is GetEnvInt for booleans, accepting the forms of strconv.ParseBool.
func GetEnvBool(key string, fallback bool) bool {
	if s := os.Getenv(key); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	}
	return fallback
}
