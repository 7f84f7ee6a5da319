package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"fintrack/pkg/mongodb"

	"github.com/joho/godotenv"
)

type Environment struct {
	// Server configs
	IsDocker         bool
	Port             string
	GinMode          string
	LogLevel         string
	CorsAllowOrigins []string
	ShutdownTimeout  time.Duration

	// Database configs
	MongoURI            string
	MongoDatabaseName   string
	MongoConnectTimeout time.Duration
	MongoTransactions   string

	// Redis configs
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	InitLockTTL   time.Duration

	// Bootstrap admin
	DefaultAdminUsername string
	DefaultAdminPassword string
}

var Env Environment

// LoadEnv loads environment variables from .env file if present
// and validates them
func LoadEnv() error {
	// Check if running in Docker
	Env.IsDocker = os.Getenv("IS_DOCKER") == "true"

	// Load .env file only if not running in Docker
	if !Env.IsDocker {
		if err := godotenv.Load(); err != nil {
			fmt.Printf("Warning: .env file not found: %v\n", err)
		}
	}

	// Server configs
	Env.Port = getEnvWithDefault("PORT", "3001")
	Env.GinMode = getEnvWithDefault("GIN_MODE", "release")
	Env.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	Env.CorsAllowOrigins = getListEnvWithDefault("CORS_ALLOW_ORIGINS", []string{"*"})
	Env.ShutdownTimeout = getDurationEnvWithDefault("SHUTDOWN_TIMEOUT", 30*time.Second)

	// Database configs
	Env.MongoURI = getEnvWithDefault("MONGODB_URI", "mongodb://localhost:27017")
	Env.MongoDatabaseName = getEnvWithDefault("MONGODB_DB_NAME", "fintrack")
	Env.MongoConnectTimeout = getDurationEnvWithDefault("MONGODB_CONNECT_TIMEOUT", 30*time.Second)
	Env.MongoTransactions = strings.ToLower(getEnvWithDefault("MONGODB_TRANSACTIONS", mongodb.TransactionsAuto))

	// Redis is optional, an empty host disables it
	Env.RedisHost = os.Getenv("REDIS_HOST")
	Env.RedisPort = getEnvWithDefault("REDIS_PORT", "6379")
	Env.RedisUsername = os.Getenv("REDIS_USERNAME")
	Env.RedisPassword = os.Getenv("REDIS_PASSWORD")
	Env.InitLockTTL = getDurationEnvWithDefault("INIT_LOCK_TTL", 30*time.Second)

	Env.DefaultAdminUsername = getEnvWithDefault("DEFAULT_ADMIN_USERNAME", "admin")
	Env.DefaultAdminPassword = getEnvWithDefault("DEFAULT_ADMIN_PASSWORD", "admin123")

	return validateConfig()
}

// RedisEnabled reports whether a Redis host was configured.
func (e Environment) RedisEnabled() bool {
	return e.RedisHost != ""
}

// Helper functions to get environment variables with defaults
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getListEnvWithDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

func getDurationEnvWithDefault(key string, defaultValue time.Duration) time.Duration {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(strValue)
	if err != nil {
		fmt.Printf("Warning: Invalid duration for %s, using default: %v\n", key, defaultValue)
		return defaultValue
	}
	return value
}

func validateConfig() error {
	if !isValidMongoURI(Env.MongoURI) {
		return fmt.Errorf("invalid MONGODB_URI format: %s", Env.MongoURI)
	}

	if Env.MongoDatabaseName == "" {
		return fmt.Errorf("MONGODB_DB_NAME must not be empty")
	}

	switch Env.MongoTransactions {
	case mongodb.TransactionsAuto, mongodb.TransactionsOn, mongodb.TransactionsOff:
	default:
		return fmt.Errorf("MONGODB_TRANSACTIONS must be one of auto, on, off, got: %s", Env.MongoTransactions)
	}

	if Env.MongoConnectTimeout <= 0 {
		return fmt.Errorf("MONGODB_CONNECT_TIMEOUT must be positive, got: %v", Env.MongoConnectTimeout)
	}
	if Env.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got: %v", Env.ShutdownTimeout)
	}
	if Env.InitLockTTL <= 0 {
		return fmt.Errorf("INIT_LOCK_TTL must be positive, got: %v", Env.InitLockTTL)
	}

	return nil
}

func isValidMongoURI(uri string) bool {
	u, err := url.Parse(uri)
	if err != nil {
		return false
	}
	return (u.Scheme == "mongodb" || u.Scheme == "mongodb+srv") && u.Host != ""
}
