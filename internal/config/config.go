package config

import (
	"os"
	"path/filepath"
	"sync"

	"fjacquet/spend-tracker/internal/logging"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file in the working
// directory or its parent, if one exists. Variables already set in the
// environment are not overridden. It only runs once per process.
func LoadEnv(logger logging.Logger) {
	envOnce.Do(func() {
		loadEnvFile(logger)
	})
}

func loadEnvFile(logger logging.Logger) string {
	envFile := findEnvFile()
	if envFile == "" {
		logger.Debug("No .env file found, using environment variables")
		return ""
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.WithError(err).Warn("Error loading .env file",
			logging.Field{Key: logging.FieldFile, Value: envFile})
		return ""
	}
	logger.Debug("Loaded environment variables",
		logging.Field{Key: logging.FieldFile, Value: envFile})
	return envFile
}

func findEnvFile() string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
