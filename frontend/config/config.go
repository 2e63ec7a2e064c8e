package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// Server config
	Port        string
	MetricsPort string

	// Backend relay config
	BackendURL     string
	BackendTimeout time.Duration

	LogLevel string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using system env")
	}

	return &Config{
		Port:        getEnv("FRONTEND_PORT", "5000"),
		MetricsPort: getEnv("METRICS_PORT", "2112"),

		BackendURL:     getEnv("BACKEND_URL", "http://localhost:5001/submit"),
		BackendTimeout: getDuration("BACKEND_TIMEOUT", 10*time.Second),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
