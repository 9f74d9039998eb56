package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"estate-backend/internal/auth"
	"estate-backend/internal/config"
	"estate-backend/internal/handlers"
	"estate-backend/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds the full route table with nil-service handlers. The
// auth middleware is real, so every request here is decided before a handler
// body ever runs.
func newTestRouter(t *testing.T) (http.Handler, *auth.JWTManager) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "estate-backend"
	jwtManager := auth.NewJWTManager(cfg)

	r := NewRouter(
		&handlers.AuthHandler{},
		&handlers.PropertyHandler{},
		&handlers.ApplicationHandler{},
		&handlers.LeaseHandler{},
		&handlers.PaymentHandler{},
		&handlers.TenantHandler{},
		&handlers.ManagerHandler{},
		&handlers.NotificationHandler{},
		&handlers.HealthHandler{},
		middleware.NewAuthMiddleware(jwtManager),
	)
	return r, jwtManager
}

func TestUnknownRouteReturnsJSONNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/no-such-route", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message": "Route not found"}`, rec.Body.String())
}

func TestWrongMethodReturnsJSONMethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/auth/login", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message": "Method not allowed"}`, rec.Body.String())
}

func TestManagerPortfolioRejectsTenantRole(t *testing.T) {
	router, jwtManager := newTestRouter(t)

	token, err := jwtManager.GenerateToken(7, "t@example.com", "tenant")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/managers/3/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestManagerPortfolioRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/managers/3/properties", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
