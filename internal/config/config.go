package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	Port        string
	PostgresURL string
	AutoMigrate bool

	JWTSecret     string
	JWTTTLMinutes int

	// IANA zone used for revenue bucketing and default report windows.
	Timezone string

	LogLevel string

	OTelEndpoint string
	OTelInsecure bool
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %v", err)
	}

	return Config{
		Env:           getEnvWithDefault("APP_ENV", "development"),
		Port:          getEnvWithDefault("PORT", "8080"),
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		AutoMigrate:   readBool("DB_AUTO_MIGRATE", true),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTLMinutes: readInt("JWT_TTL_MINUTES", 60),
		Timezone:      getEnvWithDefault("APP_TIMEZONE", "Asia/Ho_Chi_Minh"),
		LogLevel:      strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")),
		OTelEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTelInsecure:  readBool("OTEL_EXPORTER_OTLP_INSECURE", false),
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func readBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}
