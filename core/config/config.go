package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel    OTelConfig
	Twilio  TwilioConfig
	Cluey   ClueyConfig
	Redis   RedisConfig
	Forward ForwardConfig
	Env     string
	Port    string
}

// TwilioConfig holds credentials for the WhatsApp delivery channel.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	// WhatsAppFrom is the sender address, e.g. "whatsapp:+14155238886".
	WhatsAppFrom string
}

// ClueyConfig points at the incident tracking backend.
type ClueyConfig struct {
	BaseURL string
	// ServiceToken is used when a binding has no per-owner credential.
	ServiceToken string
}

type RedisConfig struct {
	URL string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// ForwardConfig controls the best-effort relay of inbound messages to Cluey.
type ForwardConfig struct {
	Enabled bool
}

// Load loads configuration from environment variables.
// In development it also reads a local .env file.
//
// Channel credentials, the Redis URL and the Cluey base URL are required;
// missing any of them is a startup failure, never a per-request one.
func Load() (Config, error) {
	if getEnv("BRIDGE_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:  getEnv("BRIDGE_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		Twilio: TwilioConfig{
			AccountSID:   getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:    getEnv("TWILIO_AUTH_TOKEN", ""),
			WhatsAppFrom: getEnv("TWILIO_WHATSAPP_FROM", ""),
		},
		Cluey: ClueyConfig{
			BaseURL:      getEnv("CLUEY_BASE_URL", ""),
			ServiceToken: getEnv("CLUEY_SERVICE_TOKEN", ""),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
		},
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "bridge"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		Forward: ForwardConfig{
			Enabled: getEnvBool("FORWARD_TO_BACKEND", true),
		},
	}

	if cfg.Twilio.AccountSID == "" || cfg.Twilio.AuthToken == "" || cfg.Twilio.WhatsAppFrom == "" {
		return Config{}, fmt.Errorf("TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_WHATSAPP_FROM are required")
	}

	if cfg.Redis.URL == "" {
		return Config{}, fmt.Errorf("REDIS_URL is required")
	}

	if cfg.Cluey.BaseURL == "" {
		return Config{}, fmt.Errorf("CLUEY_BASE_URL is required")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
