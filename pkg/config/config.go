package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	Environment  string
	BaseURL      string
	FeedTimeout  int64
	FeedCacheTTL int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:8080"),
		FeedTimeout:  getEnvAsInt64("FEED_TIMEOUT_SECONDS", 5),
		FeedCacheTTL: getEnvAsInt64("FEED_CACHE_TTL_SECONDS", 60),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
