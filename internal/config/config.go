package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	LogFormat   string `env:"LOG_FORMAT" validate:"oneof=text json"`
	Environment string `env:"ENVIRONMENT" validate:"oneof=dev staging prod test"`
	ServiceName string `env:"SERVICE_NAME" validate:"required,max=64"`
	Version     string `env:"VERSION" validate:"required,max=32"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: strings.ToLower(getEnv(EnvEnvironment, DefaultEnvironment)),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.Environment == DefaultEnvironment
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
