package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	WhatsappVerifyToken string
	WhatsappAccessToken string
	DatabaseURL         string
	CinetpayAPIKey      string
	Port                string
	Environment         string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Printf("no .env file loaded: %v", err)
	}

	cfg := Config{
		WhatsappVerifyToken: getEnv("WHATSAPP_VERIFY_TOKEN", "chopexpress_verify_token"),
		WhatsappAccessToken: os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		CinetpayAPIKey:      os.Getenv("CINETPAY_API_KEY"),
		Port:                getEnv("PORT", "8000"),
		Environment:         getEnv("ENVIRONMENT", "development"),
	}

	if cfg.DatabaseURL == "" {
		logrus.Warn("DATABASE_URL not set, data endpoints will answer 503")
	}
	return cfg
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
