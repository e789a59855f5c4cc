package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	UpstreamURL  string
	PollInterval time.Duration
	HTTPTimeout  time.Duration
	Waiter       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		UpstreamURL:  getEnv("UPSTREAM_URL", "http://localhost:8000"),
		PollInterval: time.Duration(getEnvInt("POLL_INTERVAL_SECONDS", 15)) * time.Second,
		HTTPTimeout:  time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		Waiter:       getEnv("WAITER_NAME", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return n
}
