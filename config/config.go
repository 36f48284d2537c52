package config

import (
	"os"
	"strconv"
)

type Config struct {
	InputDir  string
	OutputDir string
	Quality   int
}

func Load() *Config {
	return &Config{
		InputDir:  getEnv("INPUT_DIR", "Photos"),
		OutputDir: getEnv("OUTPUT_DIR", "output"),
		Quality:   getEnvAsInt("DEFAULT_QUALITY", 85),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
