package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkhouse/ecommerce-backend/internal/config"
	"github.com/inkhouse/ecommerce-backend/internal/middleware"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(context.Background(), map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "development", cfg.GoEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, middleware.PermitAll, cfg.Policy())
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=inkhouse sslmode=disable",
		cfg.DSN())
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(context.Background(), map[string]string{
		"PORT":                 ":9090",
		"GO_ENV":               "production",
		"POSTGRES_HOST":        "db",
		"POSTGRES_PORT":        "5433",
		"POSTGRES_PASSWORD":    "s3cret",
		"CORS_ALLOWED_ORIGINS": "https://shop.example.com",
		"SHUTDOWN_TIMEOUT":     "3s",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://shop.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Contains(t, cfg.DSN(), "host=db port=5433")
	assert.Contains(t, cfg.DSN(), "password=s3cret")
	assert.NotContains(t, cfg.RedactedDSN(), "s3cret")
}

func TestLoad_DatabaseURLWins(t *testing.T) {
	cfg, err := config.LoadFrom(context.Background(), map[string]string{
		"DATABASE_URL":  "postgres://app:pw@db:5432/inkhouse?sslmode=disable",
		"POSTGRES_HOST": "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, "postgres://app:pw@db:5432/inkhouse?sslmode=disable", cfg.DSN())
	assert.Equal(t, "postgres://app:xxxxx@db:5432/inkhouse?sslmode=disable", cfg.RedactedDSN())
}

func TestLoad_RejectsUnknownAccessPolicy(t *testing.T) {
	_, err := config.LoadFrom(context.Background(), map[string]string{"ACCESS_POLICY": "jwt"})
	assert.ErrorContains(t, err, "ACCESS_POLICY")
}

func TestLoad_BadNumber(t *testing.T) {
	_, err := config.LoadFrom(context.Background(), map[string]string{"POSTGRES_PORT": "abc"})
	assert.Error(t, err)
}
