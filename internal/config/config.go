package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

type Config struct {
	AppName string
	AppPort string
	AppUrl  string

	// Database
	DBUrl string

	// Identity provider token verification
	IdPIssuer    string
	IdPPublicKey *rsa.PublicKey

	// Twilio / SendGrid for payment reminders
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromPhone   string
	SendGridAPIKey    string
	SendGridFromEmail string

	// Reminder scanner
	ReminderCronSpec string

	// Toggles
	SeedDemoData        bool
	SendgridSandboxMode bool
	CORSHighSecurity    bool
}

// LoadConfig reads .env (when present) and the process environment.
// Missing required values are fatal: the service refuses to start
// half-configured.
func LoadConfig() *Config {
	// .env is a development convenience; deployed environments inject
	// real env vars.
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("no .env file found, relying on environment")
	}

	cfg := &Config{
		AppName:           requireEnv("APP_NAME"),
		AppPort:           requireEnv("APP_PORT"),
		AppUrl:            requireEnv("APP_URL"),
		DBUrl:             requireEnv("DB_URL"),
		IdPIssuer:         requireEnv("IDP_ISSUER"),
		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:   os.Getenv("TWILIO_FROM_PHONE"),
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
		ReminderCronSpec:  envOrDefault("REMINDER_CRON_SPEC", "0 8 * * *"),

		SeedDemoData:        os.Getenv("SEED_DEMO_DATA") == "true",
		SendgridSandboxMode: os.Getenv("SENDGRID_SANDBOX_MODE") == "true",
		CORSHighSecurity:    os.Getenv("CORS_HIGH_SECURITY") == "true",
	}

	pubKey, err := parseRSAPublicKeyBase64(requireEnv("IDP_PUBLIC_KEY_BASE64"))
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse IDP_PUBLIC_KEY_BASE64")
	}
	cfg.IdPPublicKey = pubKey

	utils.Logger.Info("Loaded config for app: ", cfg.AppName)
	return cfg
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Logger.Fatalf("%s env var is missing", key)
	}
	return v
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseRSAPublicKeyBase64 decodes a base64-wrapped PEM block holding a
// PKIX RSA public key, the format the identity provider publishes.
func parseRSAPublicKeyBase64(b64 string) (*rsa.PublicKey, error) {
	pemBytes, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	rsaKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("key is not an RSA public key")
	}
	return rsaKey, nil
}
