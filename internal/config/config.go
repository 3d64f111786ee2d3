// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an error.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the verify service.
type Config struct {
	Port          string
	DatabaseURL   string
	RedisURL      string
	ClassifierURL string
	RetentionDays int
}

// Load reads a .env file if present, then environment variables, and
// returns a validated Config.
func Load() (*Config, error) {
	// Optional in production, convenient in development
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	classifierURL := os.Getenv("CLASSIFIER_URL")
	if classifierURL == "" {
		return nil, fmt.Errorf("CLASSIFIER_URL is required")
	}

	port := os.Getenv("VERIFY_PORT")
	if port == "" {
		port = "8083"
	}

	retentionDays := 90
	if raw := os.Getenv("SUBMISSION_RETENTION_DAYS"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("SUBMISSION_RETENTION_DAYS must be a positive integer, got %q", raw)
		}
		retentionDays = v
	}

	return &Config{
		Port:          port,
		DatabaseURL:   dbURL,
		RedisURL:      redisURL,
		ClassifierURL: classifierURL,
		RetentionDays: retentionDays,
	}, nil
}
