package auth

import (
	"strings"
	"testing"

	"estate-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "estate-backend"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret"))

	token, err := manager.GenerateToken(42, "tenant@example.com", "tenant")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "tenant@example.com", claims.Email)
	assert.Equal(t, "tenant", claims.Role)
	assert.Equal(t, "estate-backend", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewJWTManager(testConfig("secret-a")).GenerateToken(1, "a@b.com", "manager")
	require.NoError(t, err)

	_, err = NewJWTManager(testConfig("secret-b")).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenTampered(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret"))
	token, err := manager.GenerateToken(1, "a@b.com", "tenant")
	require.NoError(t, err)

	// Flip a character in the payload segment
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = manager.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestValidateTokenUnsignedAlgRejected(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret"))

	// alg=none token with no signature
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VyX2lkIjoxfQ."
	_, err := manager.ValidateToken(unsigned)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret"))
	_, err := manager.ValidateToken("not-a-token")
	assert.Error(t, err)
}
