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

// Cart store backends
const (
	CartStoreMemory = "memory"
	CartStoreRedis  = "redis"
)

// Cart scopes
const (
	CartScopeSession = "session"
	CartScopeShared  = "shared"
)

// Catalog drivers
const (
	CatalogDriverSQLite   = "sqlite"
	CatalogDriverPostgres = "postgres"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Catalog  CatalogConfig
	Cart     CartConfig
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
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	StaticDir    string
}

// CatalogConfig selects where products are seeded and loaded from
type CatalogConfig struct {
	Driver string
	DSN    string
}

// CartConfig contains cart storage configuration
type CartConfig struct {
	Store string
	Scope string
	TTL   time.Duration
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

// CheckoutConfig contains order numbering configuration
type CheckoutConfig struct {
	OrderPrefix string
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	RateLimitPerMinute int
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
			Name:        getEnv("APP_NAME", "Saraswati Store"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:         getEnv("APP_PORT", "3000"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			StaticDir:    getEnv("STATIC_DIR", ""),
		},
		Catalog: CatalogConfig{
			Driver: strings.ToLower(getEnv("CATALOG_DRIVER", CatalogDriverSQLite)),
			DSN:    getEnv("CATALOG_DSN", "file::memory:?cache=shared"),
		},
		Cart: CartConfig{
			Store: strings.ToLower(getEnv("CART_STORE", CartStoreMemory)),
			Scope: strings.ToLower(getEnv("CART_SCOPE", CartScopeSession)),
			TTL:   getEnvAsDuration("CART_TTL", 24*time.Hour),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
		},
		Checkout: CheckoutConfig{
			OrderPrefix: getEnv("CHECKOUT_ORDER_PREFIX", "SAR-"),
		},
		Security: SecurityConfig{
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 300),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept"}),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
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
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	switch c.Catalog.Driver {
	case CatalogDriverSQLite, CatalogDriverPostgres:
	default:
		return fmt.Errorf("CATALOG_DRIVER must be %q or %q, got %q", CatalogDriverSQLite, CatalogDriverPostgres, c.Catalog.Driver)
	}
	if c.Catalog.DSN == "" {
		return fmt.Errorf("CATALOG_DSN is required")
	}

	switch c.Cart.Store {
	case CartStoreMemory:
	case CartStoreRedis:
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required when CART_STORE=redis")
		}
	default:
		return fmt.Errorf("CART_STORE must be %q or %q, got %q", CartStoreMemory, CartStoreRedis, c.Cart.Store)
	}

	switch c.Cart.Scope {
	case CartScopeSession, CartScopeShared:
	default:
		return fmt.Errorf("CART_SCOPE must be %q or %q, got %q", CartScopeSession, CartScopeShared, c.Cart.Scope)
	}

	if c.Cart.TTL <= 0 {
		return fmt.Errorf("CART_TTL must be positive")
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

// UsesRedis reports whether any component needs a Redis connection
func (c *Config) UsesRedis() bool {
	return c.Cart.Store == CartStoreRedis
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
