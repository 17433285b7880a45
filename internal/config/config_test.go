package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

func encodedTestKey(t *testing.T) (string, *rsa.PublicKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return base64.StdEncoding.EncodeToString(pemBytes), &key.PublicKey
}

func TestParseRSAPublicKeyBase64_RoundTrip(t *testing.T) {
	encoded, want := encodedTestKey(t)

	got, err := parseRSAPublicKeyBase64(encoded)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestParseRSAPublicKeyBase64_Errors(t *testing.T) {
	_, err := parseRSAPublicKeyBase64("not-base64!!")
	assert.ErrorContains(t, err, "invalid base64")

	_, err = parseRSAPublicKeyBase64(base64.StdEncoding.EncodeToString([]byte("no pem here")))
	assert.ErrorContains(t, err, "no PEM block")

	// Valid PEM wrapping bytes that are not a PKIX key.
	bad := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: []byte("garbage")})
	_, err = parseRSAPublicKeyBase64(base64.StdEncoding.EncodeToString(bad))
	assert.ErrorContains(t, err, "failed to parse public key")
}

func TestLoadConfig_ReadsEnvironment(t *testing.T) {
	utils.InitLogger("config-test")

	encoded, _ := encodedTestKey(t)
	t.Setenv("APP_NAME", "rentals-test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_URL", "http://localhost:8080")
	t.Setenv("DB_URL", "postgres://localhost/rentals_test")
	t.Setenv("IDP_ISSUER", "https://idp.example.com")
	t.Setenv("IDP_PUBLIC_KEY_BASE64", encoded)
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("REMINDER_CRON_SPEC", "")

	cfg := LoadConfig()

	assert.Equal(t, "rentals-test", cfg.AppName)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "postgres://localhost/rentals_test", cfg.DBUrl)
	assert.Equal(t, "https://idp.example.com", cfg.IdPIssuer)
	assert.NotNil(t, cfg.IdPPublicKey)
	assert.True(t, cfg.SeedDemoData)
	assert.False(t, cfg.SendgridSandboxMode)
	assert.Equal(t, "0 8 * * *", cfg.ReminderCronSpec, "cron spec falls back to the default")
}
