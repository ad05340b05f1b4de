package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	RedisHost        string
	RedisPort        string
	SessionSecret    string
	ServerPort       string
	GinMode          string
	LogLevel         string
	DefaultUserID    string
	DefaultUserEmail string
}

func Load() *Config {
	// A .env file is optional; plain environment variables win.
	_ = godotenv.Load()

	return &Config{
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "healthlog"),
		DBPassword:       getEnv("DB_PASSWORD", "healthlog"),
		DBName:           getEnv("DB_NAME", "health_log"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		SessionSecret:    getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DefaultUserID:    getEnv("DEFAULT_USER_ID", "123e4567-e89b-12d3-a456-426614174000"),
		DefaultUserEmail: getEnv("DEFAULT_USER_EMAIL", "default@healthlog.local"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
