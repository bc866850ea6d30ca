package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
	OpenAI  OpenAIConfig
	Tasks   TaskConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port string
}

// MongoDBConfig holds MongoDB connection details
type MongoDBConfig struct {
	URI                string
	Database           string
	ReportCollection   string
	StrategyCollection string
	FundCollection     string
}

// RedisConfig holds Redis connection details for the task result store
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// OpenAIConfig holds OpenAI API configuration
type OpenAIConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// TaskConfig holds task orchestration settings
type TaskConfig struct {
	ResultTTL        time.Duration // retention window for task records
	GeneratorTimeout time.Duration // deadline for a single generator call
	MaxConcurrent    int64         // bound on concurrent generator calls
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnv("PORT", "5000"),
		},
		MongoDB: MongoDBConfig{
			URI:                getEnv("MONGODB_URI", ""),
			Database:           getEnv("MONGODB_DATABASE", "MoneyFi"),
			ReportCollection:   getEnv("MONGODB_REPORT_COLLECTION", "reports"),
			StrategyCollection: getEnv("MONGODB_STRATEGY_COLLECTION", "strategies"),
			FundCollection:     getEnv("MONGODB_FUND_COLLECTION", "mutual_funds"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o"),
			Temperature: getEnvFloat("OPENAI_TEMPERATURE", 0.2),
			MaxTokens:   getEnvInt("OPENAI_MAX_TOKENS", 0), // 0 means no limit
		},
		Tasks: TaskConfig{
			ResultTTL:        time.Duration(getEnvInt("TASK_RESULT_TTL_SECONDS", 3600)) * time.Second,
			GeneratorTimeout: time.Duration(getEnvInt("GENERATOR_TIMEOUT_SECONDS", 120)) * time.Second,
			MaxConcurrent:    int64(getEnvInt("TASK_MAX_CONCURRENT", 4)),
		},
	}

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ValidateConfig validates that required configuration values are present
func ValidateConfig(config *Config) error {
	if config.MongoDB.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if config.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}
	if config.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if config.Tasks.MaxConcurrent < 1 {
		return fmt.Errorf("TASK_MAX_CONCURRENT must be at least 1")
	}
	return nil
}

// Helper functions for environment variable access
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
