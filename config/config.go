package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the festival service configuration.
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string

	Port      string
	AdminPort string

	FlavoursPath  string
	LocationsPath string

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	KafkaBrokers []string

	JWTSecret   string
	TokenExpiry time.Duration

	// Fallback coordinate used when a request carries no origin. Matches the
	// festival downtown core, where most carts cluster.
	DefaultLatitude  float64
	DefaultLongitude float64

	CORSAllowedOrigins string
}

// Load reads configuration from the environment. A .env file is honored when
// present but never required.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName: getEnv("OTEL_SERVICE_NAME", "festival-api"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		Port:      getEnv("HTTP_PORT", "8080"),
		AdminPort: getEnv("ADMIN_PORT", "9100"),

		FlavoursPath:  getEnv("CATALOG_FLAVOURS_PATH", "data/flavours.json"),
		LocationsPath: getEnv("CATALOG_LOCATIONS_PATH", "data/locations.json"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CacheTTL:      getDuration("CACHE_TTL", 5*time.Minute),

		KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),

		JWTSecret:   getEnv("JWT_SECRET", "festival-dev-secret"),
		TokenExpiry: getDuration("TOKEN_EXPIRY", 365*24*time.Hour),

		DefaultLatitude:  getFloat("DEFAULT_LATITUDE", 49.282729),
		DefaultLongitude: getFloat("DEFAULT_LONGITUDE", -123.120735),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
