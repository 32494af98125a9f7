package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	Environment     string

	// Etsy app credentials (per-store tokens live on the store document)
	EtsyClientID string

	// Sync tuning
	SyncIntervalHours int
	SyncPageSize      int
	SyncBatchSize     int
	RequestTimeout    int64 // seconds, per outbound Etsy call
	CronSpec          string
	CronSecret        string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),

		EtsyClientID: getEnv("ETSY_CLIENT_ID", ""),

		SyncIntervalHours: getEnvAsInt("SYNC_INTERVAL_HOURS", 24),
		SyncPageSize:      getEnvAsInt("SYNC_PAGE_SIZE", 100),
		SyncBatchSize:     getEnvAsInt("SYNC_BATCH_SIZE", 499),
		RequestTimeout:    getEnvAsInt64("REQUEST_TIMEOUT_SECONDS", 30),
		CronSpec:          getEnv("SYNC_CRON_SPEC", "@every 24h"),
		CronSecret:        getEnv("CRON_SECRET", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
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
