package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

type Config struct {
	StorageBackend string
	StoragePath    string
	RedisAddr      string

	// KeyPrefix namespaces every persisted key, e.g. "pathan-progress".
	KeyPrefix string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		StorageBackend: getEnv("STORAGE_BACKEND", BackendFile),
		StoragePath:    getEnv("STORAGE_PATH", "pathan-fitness.json"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		KeyPrefix:      getEnv("KEY_PREFIX", "pathan"),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
