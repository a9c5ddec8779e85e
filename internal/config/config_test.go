// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "dummyjson", cfg.Catalog.Provider)
	assert.Equal(t, "https://dummyjson.com", cfg.Catalog.BaseURL)
	assert.Equal(t, 20, cfg.Catalog.PageSize)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, 1500*time.Millisecond, cfg.Checkout.ProcessingDelay)
	assert.Equal(t, "/checkout/success", cfg.Checkout.ConfirmationRoute)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CATALOG_PROVIDER", "static")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("CHECKOUT_PROCESSING_DELAY", "0s")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com,https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "static", cfg.Catalog.Provider)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, time.Duration(0), cfg.Checkout.ProcessingDelay)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.Security.CORSAllowedOrigins)
}

func TestValidate(t *testing.T) {
	t.Setenv("CATALOG_PROVIDER", "sqlite")
	_, err := Load()
	assert.ErrorContains(t, err, "CATALOG_PROVIDER")
}

func TestValidateStorageBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "s3")
	_, err := Load()
	assert.ErrorContains(t, err, "STORAGE_BACKEND")
}

func TestGetRedisAddr(t *testing.T) {
	cfg := &Config{}
	cfg.Redis.Host = "cache.internal"
	cfg.Redis.Port = "6380"
	assert.Equal(t, "cache.internal:6380", cfg.GetRedisAddr())
}
