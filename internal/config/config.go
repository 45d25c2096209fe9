package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"

	defaultHTTPPort  = "4000"
	defaultSQLiteDSN = "file:posadmin.db?_pragma=foreign_keys(1)&_time_format=sqlite"
)

// Config holds application configuration values.
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	HTTPPort       string
	DatabaseDriver string
	DatabaseDSN    string
	AuthSecret     string
	AllowedOrigins []string
	JaegerEndpoint string
}

// IsDevelopment reports whether the service runs with developer-friendly output.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads configuration from an optional .env file and environment variables with reasonable defaults.
func Load() Config {
	_ = godotenv.Load()

	port := getEnv("PORT", defaultHTTPPort)
	if _, err := strconv.Atoi(port); err != nil {
		log.Warn().Str("port", port).Msg("invalid PORT value, falling back to default")
		port = defaultHTTPPort
	}

	driver := strings.ToLower(getEnv("DATABASE_DRIVER", DriverSQLite))
	if driver == "postgres" || driver == "postgresql" {
		driver = DriverPostgres
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		if driver == DriverPostgres {
			dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
				getEnv("DB_USER", "postgres"),
				os.Getenv("DB_PASSWORD"),
				getEnv("DB_HOST", "localhost"),
				getEnv("DB_PORT", "5432"),
				getEnv("DB_NAME", "posadmin"),
				getEnv("DB_SSLMODE", "disable"),
			)
		} else {
			dsn = defaultSQLiteDSN
		}
	}

	return Config{
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "posadmin"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       port,
		DatabaseDriver: driver,
		DatabaseDSN:    dsn,
		AuthSecret:     os.Getenv("AUTH_SECRET"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		JaegerEndpoint: os.Getenv("JAEGER_ENDPOINT"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
