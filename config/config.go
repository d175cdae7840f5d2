package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultSeed reproduces the reference demo corpus
	DefaultSeed = 42
	// DefaultGrowthMultiplier leaves period-over-period changes untouched
	DefaultGrowthMultiplier = 1.0
	// DefaultCacheTTL matches the dashboard UI's stale time
	DefaultCacheTTL = 5 * time.Minute
	// SeedLimit is the generator modulus; seeds must be below it
	SeedLimit = 233280
)

// Config holds all application configuration
type Config struct {
	Port               string
	GoEnv              string
	Seed               int64
	GrowthMultiplier   float64
	Auth0Domain        string
	Auth0Audience      string
	AWSRegion          string
	AWSS3Bucket        string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	RedisURL           string
	CacheTTL           time.Duration
}

var appConfig *Config

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	return FromEnv()
}

// FromEnv builds and validates a Config from the current process environment
func FromEnv() (*Config, error) {
	seed, err := strconv.ParseInt(getEnv("DASHBOARD_SEED", strconv.Itoa(DefaultSeed)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("DASHBOARD_SEED must be an integer: %w", err)
	}

	multiplier, err := strconv.ParseFloat(getEnv("DASHBOARD_GROWTH_MULTIPLIER", "1.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("DASHBOARD_GROWTH_MULTIPLIER must be a number: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", DefaultCacheTTL.String()))
	if err != nil {
		return nil, fmt.Errorf("CACHE_TTL must be a duration: %w", err)
	}

	config := &Config{
		Port:               getEnv("PORT", "8080"),
		GoEnv:              getEnv("GO_ENV", "development"),
		Seed:               seed,
		GrowthMultiplier:   multiplier,
		Auth0Domain:        getEnv("AUTH0_DOMAIN", ""),
		Auth0Audience:      getEnv("AUTH0_AUDIENCE", ""),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSS3Bucket:        getEnv("AWS_S3_BUCKET", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		CacheTTL:           cacheTTL,
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Default returns the configuration used when no environment is provided
func Default() *Config {
	return &Config{
		Port:             "8080",
		GoEnv:            "development",
		Seed:             DefaultSeed,
		GrowthMultiplier: DefaultGrowthMultiplier,
		AWSRegion:        "us-east-1",
		CacheTTL:         DefaultCacheTTL,
	}
}

// Validate checks that all configuration values are usable
func (c *Config) Validate() error {
	if c.Seed < 0 || c.Seed >= SeedLimit {
		return fmt.Errorf("DASHBOARD_SEED must be in [0, %d), got %d", SeedLimit, c.Seed)
	}
	if c.GrowthMultiplier < 0 {
		return fmt.Errorf("DASHBOARD_GROWTH_MULTIPLIER must not be negative, got %g", c.GrowthMultiplier)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL)
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// ExportsEnabled reports whether CSV archives can be written to S3
func (c *Config) ExportsEnabled() bool {
	return c.AWSS3Bucket != ""
}

// AuthEnabled reports whether protected routes should validate Auth0 tokens
func (c *Config) AuthEnabled() bool {
	return c.Auth0Domain != ""
}

// GetConfig returns the process-wide configuration, falling back to defaults
func GetConfig() *Config {
	if appConfig == nil {
		return Default()
	}
	return appConfig
}

// SetConfig sets the process-wide configuration
func SetConfig(cfg *Config) {
	appConfig = cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
