package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort int
	Database   DatabaseConfig
	Auth       AuthConfig
	Pagination PaginationConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	UseSSL   bool
}

// AuthConfig holds the token signing parameters. Read once at startup
// and never mutated afterwards.
type AuthConfig struct {
	// Secret is the shared HMAC signing secret.
	Secret string

	// Algorithm is the signing algorithm identifier (HS256, HS384, HS512).
	Algorithm string

	// TokenTTL is the token lifetime in seconds, shared by all tokens
	// issued by this process.
	TokenTTL int
}

type PaginationConfig struct {
	MaxLimit int
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "fittrack"),
		Password: getEnv("DB_PASSWORD", "password"),
		DBName:   getEnv("DB_NAME", "fittrack_db"),
		UseSSL:   getEnvBool("DB_USE_SSL", false),
	}

	authConfig := AuthConfig{
		Secret:    getEnv("JWT_SECRET_KEY", ""),
		Algorithm: getEnv("JWT_ALGORITHM", "HS256"),
		TokenTTL:  getEnvInt("JWT_EXP", 3600),
	}

	return Config{
		ServerPort: getEnvInt("SERVER_PORT", 8080),
		Database:   dbConfig,
		Auth:       authConfig,
		Pagination: PaginationConfig{
			MaxLimit: getEnvInt("PAGINATION_MAX_LIMIT", 100),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		return valueStr == "true" || valueStr == "1"
	}
	return defaultValue
}
