// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Catalog  CatalogConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// CatalogConfig contains product data source configuration
type CatalogConfig struct {
	// Provider selects the product source: "dummyjson" or "static"
	Provider       string
	BaseURL        string
	RequestTimeout time.Duration
	PageSize       int
}

// StorageConfig contains durable key-value storage configuration
type StorageConfig struct {
	// Backend selects the persistence medium: "file", "redis" or "memory"
	Backend string
	DataDir string
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// CheckoutConfig contains checkout pipeline configuration
type CheckoutConfig struct {
	// ProcessingDelay simulates the payment round-trip of the demo
	ProcessingDelay   time.Duration
	ConfirmationRoute string
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Storefront API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Port:         getEnv("APP_PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Catalog: CatalogConfig{
			Provider:       getEnv("CATALOG_PROVIDER", "dummyjson"),
			BaseURL:        getEnv("CATALOG_BASE_URL", "https://dummyjson.com"),
			RequestTimeout: getEnvAsDuration("CATALOG_REQUEST_TIMEOUT", 10*time.Second),
			PageSize:       getEnvAsInt("CATALOG_PAGE_SIZE", 20),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", "file"),
			DataDir: getEnv("STORAGE_DATA_DIR", "./data"),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		Checkout: CheckoutConfig{
			ProcessingDelay:   getEnvAsDuration("CHECKOUT_PROCESSING_DELAY", 1500*time.Millisecond),
			ConfirmationRoute: getEnv("CHECKOUT_CONFIRMATION_ROUTE", "/checkout/success"),
		},
		Security: SecurityConfig{
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept"}),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Catalog.Provider {
	case "dummyjson", "static":
	default:
		return fmt.Errorf("CATALOG_PROVIDER must be one of: dummyjson, static")
	}

	if c.Catalog.Provider == "dummyjson" && c.Catalog.BaseURL == "" {
		return fmt.Errorf("CATALOG_BASE_URL is required")
	}

	switch c.Storage.Backend {
	case "file", "redis", "memory":
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: file, redis, memory")
	}

	if c.Storage.Backend == "file" && c.Storage.DataDir == "" {
		return fmt.Errorf("STORAGE_DATA_DIR is required")
	}

	if c.Storage.Backend == "redis" && c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}

	// Validate server port
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
