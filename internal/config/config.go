package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// DefaultModelID is the Bedrock model invoked when MODEL_ID is unset
	DefaultModelID = "anthropic.claude-sonnet-4-20250514-v1:0"
	// DefaultRegion is the Bedrock region used when AWS_REGION is unset
	DefaultRegion = "us-east-1"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required,numeric"`
	LogLevel    string `validate:"required,oneof=panic fatal error warn warning info debug trace"`
	Bedrock     BedrockConfig
	RateLimit   RateLimitConfig
}

// BedrockConfig holds the inference provider settings
type BedrockConfig struct {
	Region      string  `validate:"required"`
	ModelID     string  `validate:"required"`
	MaxTokens   int     `validate:"gte=1"`
	Temperature float64 `validate:"gte=0,lte=1"`
}

// RateLimitConfig holds rate limiting for the local HTTP server.
// A non-positive RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int `validate:"gte=0"`
}

var validate = validator.New()

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8081")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AWS_REGION", DefaultRegion)
	v.SetDefault("MODEL_ID", DefaultModelID)
	v.SetDefault("MAX_TOKENS", 512)
	v.SetDefault("TEMPERATURE", 0.6)
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	maxTokens, err := strconv.Atoi(v.GetString("MAX_TOKENS"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_TOKENS: %w", err)
	}
	temperature, err := strconv.ParseFloat(v.GetString("TEMPERATURE"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TEMPERATURE: %w", err)
	}

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		LogLevel:    strings.ToLower(v.GetString("LOG_LEVEL")),
		Bedrock: BedrockConfig{
			Region:      v.GetString("AWS_REGION"),
			ModelID:     v.GetString("MODEL_ID"),
			MaxTokens:   maxTokens,
			Temperature: temperature,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration against its struct constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the app runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ConfigureLogging applies the log level and formatter to the standard logrus logger
func (c *Config) ConfigureLogging() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if c.IsProduction() || IsServerlessMode() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
