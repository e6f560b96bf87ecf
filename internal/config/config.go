package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	FulfillmentWhatsApp = "whatsapp"
	FulfillmentBackend  = "backend"
)

type Config struct {
	AppPort         string
	AppEnv          string
	BackendURL      string
	IdpURL          string
	IdpAPIKey       string
	SessionSecret   string
	AdminEmail      string
	AdminPassHash   string
	WhatsAppNumber  string
	FulfillmentMode string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:         getEnv("APP_PORT", "8080"),
		AppEnv:          os.Getenv("APP_ENV"),
		BackendURL:      getEnv("BACKEND_URL", "http://localhost:3001"),
		IdpURL:          os.Getenv("IDP_URL"),
		IdpAPIKey:       os.Getenv("IDP_API_KEY"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassHash:   os.Getenv("ADMIN_PASSWORD_HASH"),
		WhatsAppNumber:  getEnv("WHATSAPP_NUMBER", "5511999999999"),
		FulfillmentMode: getEnv("FULFILLMENT_MODE", FulfillmentWhatsApp),
	}

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET not set")
	}

	if cfg.FulfillmentMode != FulfillmentWhatsApp && cfg.FulfillmentMode != FulfillmentBackend {
		log.Fatalf("invalid FULFILLMENT_MODE %q", cfg.FulfillmentMode)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
