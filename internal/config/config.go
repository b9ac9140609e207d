package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"alfredoptarigan/ats-resume-analyzer/internal/models"
)

type Config struct {
	Server     ServerConfig
	Gemini     GeminiConfig
	Generation GenerationConfig
	Storage    StorageConfig
	R2         R2Config
	RabbitMQ   RabbitMQConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GenerationConfig holds the initial values of the shared settings panel.
type GenerationConfig struct {
	Temperature float32
	MaxTokens   int32
}

type StorageConfig struct {
	MaxFileSize int64
}

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

var (
	ErrMissingAPIKey             = errors.New("GEMINI_API_KEY is not set")
	ErrInvalidGenerationDefaults = errors.New("default generation settings out of range")
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout: getEnvAsDuration("COMPLETION_TIMEOUT", "60s"),
		},
		Generation: GenerationConfig{
			Temperature: getEnvAsFloat32("DEFAULT_TEMPERATURE", 0.5),
			MaxTokens:   int32(getEnvAsInt("DEFAULT_MAX_TOKENS", 512)),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		R2: R2Config{
			AccountID: getEnv("R2_ACCOUNT_ID", ""),
			Bucket:    getEnv("R2_BUCKET", ""),
			AccessKey: getEnv("R2_ACCESS_KEY", ""),
			SecretKey: getEnv("R2_SECRET_KEY", ""),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      getEnv("RABBITMQ_URL", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", "workspace_updates"),
		},
	}
}

// Validate reports settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return ErrMissingAPIKey
	}
	if !c.Generation.Params().InRange() {
		return fmt.Errorf("%w: DEFAULT_TEMPERATURE=%v must be in [%v,%v], DEFAULT_MAX_TOKENS=%d must be in [%d,%d]",
			ErrInvalidGenerationDefaults,
			c.Generation.Temperature, models.MinTemperature, models.MaxTemperature,
			c.Generation.MaxTokens, models.MinMaxTokens, models.MaxMaxTokens)
	}
	return nil
}

// Params returns the defaults as the settings panel sees them.
func (g GenerationConfig) Params() models.GenerationParams {
	return models.GenerationParams{
		Temperature: g.Temperature,
		MaxTokens:   g.MaxTokens,
	}
}

// Enabled reports whether every R2 setting is present.
func (r R2Config) Enabled() bool {
	return r.AccountID != "" && r.Bucket != "" && r.AccessKey != "" && r.SecretKey != ""
}

func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
