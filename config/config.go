package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret     string
	TokenLifetime time.Duration
}

// Load reads a .env file if present and builds the config from environment
// variables. Missing values fall back to development defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, err
	}

	lifetimeMinutes, err := strconv.Atoi(getEnv("TOKEN_LIFETIME_MINUTES", "30"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:          getEnv("PORT", "5001"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        dbPort,
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "microblog"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key"),
		TokenLifetime: time.Duration(lifetimeMinutes) * time.Minute,
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
