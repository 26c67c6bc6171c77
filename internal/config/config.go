package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver      string // sqlite, mysql or postgres
	DBPath        string // sqlite file path
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	ServerAddr    string
	SessionSecret string
	GinMode       string
}

func Load() *Config {
	// Optional .env for local runs; a missing file is fine.
	_ = godotenv.Load()

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBPath:        getEnv("DB_PATH", "journal.db"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "journal"),
		DBPassword:    getEnv("DB_PASSWORD", "journal"),
		DBName:        getEnv("DB_NAME", "journal"),
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
