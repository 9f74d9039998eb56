package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"estate-backend/internal/auth"
	"estate-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMiddleware(t *testing.T) (*AuthMiddleware, *auth.JWTManager) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "estate-backend"
	jwtManager := auth.NewJWTManager(cfg)
	return NewAuthMiddleware(jwtManager), jwtManager
}

func okHandler(t *testing.T, wantUserID int, wantRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUserID, userID)

		role, ok := GetRoleFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantRole, role)

		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m, _ := newTestMiddleware(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/properties", nil)

	m.Authenticate(okHandler(t, 0, "")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message": "Authorization header required"}`, rec.Body.String())
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	m, _ := newTestMiddleware(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/properties", nil)
	req.Header.Set("Authorization", "Token abc123")

	m.Authenticate(okHandler(t, 0, "")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateBadToken(t *testing.T) {
	m, _ := newTestMiddleware(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/properties", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	m.Authenticate(okHandler(t, 0, "")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateValidToken(t *testing.T) {
	m, jwtManager := newTestMiddleware(t)

	token, err := jwtManager.GenerateToken(7, "t@example.com", "tenant")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	m.Authenticate(okHandler(t, 7, "tenant")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleAllowed(t *testing.T) {
	m, jwtManager := newTestMiddleware(t)

	token, err := jwtManager.GenerateToken(3, "m@example.com", "manager")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	m.RequireRole("manager")(okHandler(t, 3, "manager")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbidden(t *testing.T) {
	m, jwtManager := newTestMiddleware(t)

	token, err := jwtManager.GenerateToken(7, "t@example.com", "tenant")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	m.RequireRole("manager")(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireRoleMultipleAllowed(t *testing.T) {
	m, jwtManager := newTestMiddleware(t)

	token, err := jwtManager.GenerateToken(7, "t@example.com", "tenant")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/leases", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	m.RequireRole("manager", "tenant")(okHandler(t, 7, "tenant")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
