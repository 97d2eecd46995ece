package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	APIToken            string
	BaseURL             string
	ShippingProfileID   int
	RedisURL            string
	MetricsPort         string
	ItemDelaySeconds    int
	PublishDelaySeconds int
}

func Load() *Config {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()
	return &Config{
		APIToken:            os.Getenv("REVERB_API_TOKEN"),
		BaseURL:             getEnv("REVERB_BASE_URL", "https://api.reverb.com/api"),
		ShippingProfileID:   getEnvInt("SHIPPING_PROFILE_ID", 0),
		RedisURL:            os.Getenv("REDIS_URL"),
		MetricsPort:         getEnv("METRICS_PORT", "9090"),
		ItemDelaySeconds:    getEnvInt("ITEM_DELAY_SECONDS", 1),
		PublishDelaySeconds: getEnvInt("PUBLISH_DELAY_SECONDS", 2),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}
