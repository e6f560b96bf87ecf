package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv sets the environment variable for the duration of the test
		// and automatically restores it afterwards.
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("BACKEND_URL", "http://backend:3001")
		t.Setenv("IDP_URL", "https://identitytoolkit.example.com")
		t.Setenv("IDP_API_KEY", "idp_secret")
		t.Setenv("SESSION_SECRET", "session_secret")
		t.Setenv("ADMIN_EMAIL", "admin@loja.com")
		t.Setenv("WHATSAPP_NUMBER", "5511911112222")
		t.Setenv("FULFILLMENT_MODE", "backend")

		cfg := Load()

		assert.NotNil(t, cfg)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "http://backend:3001", cfg.BackendURL)
		assert.Equal(t, "https://identitytoolkit.example.com", cfg.IdpURL)
		assert.Equal(t, "idp_secret", cfg.IdpAPIKey)
		assert.Equal(t, "session_secret", cfg.SessionSecret)
		assert.Equal(t, "admin@loja.com", cfg.AdminEmail)
		assert.Equal(t, "5511911112222", cfg.WhatsAppNumber)
		assert.Equal(t, FulfillmentBackend, cfg.FulfillmentMode)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("APP_PORT", "")
		t.Setenv("BACKEND_URL", "")
		t.Setenv("WHATSAPP_NUMBER", "")
		t.Setenv("FULFILLMENT_MODE", "")
		t.Setenv("SESSION_SECRET", "session_secret")

		cfg := Load()

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "http://localhost:3001", cfg.BackendURL)
		assert.Equal(t, "5511999999999", cfg.WhatsAppNumber)
		assert.Equal(t, FulfillmentWhatsApp, cfg.FulfillmentMode)
	})
}
