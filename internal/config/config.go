package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API      APIConfig
	Storage  StorageConfig
	Security SecurityConfig
}

type APIConfig struct {
	BaseURL            string
	Timeout            time.Duration
	RateLimitPerSecond int
	RateLimitBurst     int
	UserAgent          string
}

type StorageConfig struct {
	Path       string
	Passphrase string
}

type SecurityConfig struct {
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

func Load() *Config {
	// Missing .env is fine, real environments configure via the process env.
	_ = godotenv.Load()

	return &Config{
		API: APIConfig{
			BaseURL:            getEnv("PLUTUSGRIP_API_URL", "http://localhost:8000/api"),
			Timeout:            getDurationEnv("PLUTUSGRIP_API_TIMEOUT", 30*time.Second),
			RateLimitPerSecond: getIntEnv("PLUTUSGRIP_RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     getIntEnv("PLUTUSGRIP_RATE_LIMIT_BURST", 20),
			UserAgent:          getEnv("PLUTUSGRIP_USER_AGENT", "plutusgrip-client/1.0"),
		},
		Storage: StorageConfig{
			Path:       getEnv("PLUTUSGRIP_STORE_PATH", defaultStorePath()),
			Passphrase: getEnv("PLUTUSGRIP_STORE_PASSPHRASE", ""),
		},
		Security: SecurityConfig{
			BreakerMaxFailures:  getIntEnv("PLUTUSGRIP_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("PLUTUSGRIP_BREAKER_RESET_TIMEOUT", 30*time.Second),
		},
	}
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.db"
	}
	return filepath.Join(home, ".plutusgrip", "session.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
