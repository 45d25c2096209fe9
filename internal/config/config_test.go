package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_DRIVER", "DATABASE_DSN", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT",
		"DB_NAME", "DB_SSLMODE", "AUTH_SECRET", "CORS_ALLOWED_ORIGINS", "JAEGER_ENDPOINT",
		"OTEL_SERVICE_NAME", "ENVIRONMENT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "4000", cfg.HTTPPort)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, defaultSQLiteDSN, cfg.DatabaseDSN)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.AuthSecret)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "http")

	assert.Equal(t, "4000", Load().HTTPPort)
}

func TestLoad_PostgresDSNFromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DB_USER", "pos")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "sales")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, "postgres://pos:secret@db:5432/sales?sslmode=disable", cfg.DatabaseDSN)
}

func TestLoad_ExplicitValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_DSN", "file:test.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://pos.local ,")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load()

	assert.Equal(t, "8081", cfg.HTTPPort)
	assert.Equal(t, "file:test.db", cfg.DatabaseDSN)
	assert.Equal(t, []string{"http://localhost:5173", "http://pos.local"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsDevelopment())
}
