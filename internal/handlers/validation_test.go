package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estate-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func authedRequest(method, target, body string, userID int, role string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.RoleKey, role)
	return req.WithContext(ctx)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	h := NewAuthHandler(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/signup",
		strings.NewReader(`{"name":"A","email":"a@b.com","password":"pw","role":"admin"}`))

	h.Signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "manager or tenant")
}

func TestSignupRejectsMissingFields(t *testing.T) {
	h := NewAuthHandler(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/signup",
		strings.NewReader(`{"email":"a@b.com","role":"tenant"}`))

	h.Signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateApplicationStatusRejectsUnknownStatus(t *testing.T) {
	h := NewApplicationHandler(nil)

	rec := httptest.NewRecorder()
	req := authedRequest("PUT", "/applications/5/status", `{"status":"Maybe"}`, 1, "manager")
	req = mux.SetURLVars(req, map[string]string{"id": "5"})

	h.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateApplicationStatusRejectsBadID(t *testing.T) {
	h := NewApplicationHandler(nil)

	rec := httptest.NewRecorder()
	req := authedRequest("PUT", "/applications/abc/status", `{"status":"Denied"}`, 1, "manager")
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})

	h.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithdrawRejectsNonPositiveAmount(t *testing.T) {
	h := NewPaymentHandler(nil, nil)

	rec := httptest.NewRecorder()
	req := authedRequest("POST", "/withdraw", `{"amount":-50,"destination":"bank"}`, 7, "tenant")

	h.Withdraw(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithdrawRejectsMissingDestination(t *testing.T) {
	h := NewPaymentHandler(nil, nil)

	rec := httptest.NewRecorder()
	req := authedRequest("POST", "/withdraw", `{"amount":50}`, 7, "tenant")

	h.Withdraw(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestDepositRejectsZeroAmount(t *testing.T) {
	h := NewPaymentHandler(nil, nil)

	rec := httptest.NewRecorder()
	req := authedRequest("POST", "/payments/deposit-request", `{"amount":0}`, 7, "tenant")

	h.RequestDeposit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFavoritesBlockOtherTenants(t *testing.T) {
	h := NewTenantHandler(nil)

	rec := httptest.NewRecorder()
	req := authedRequest("POST", "/tenants/9/favorites/3", "", 7, "tenant")
	req = mux.SetURLVars(req, map[string]string{"id": "9", "propertyId": "3"})

	h.AddFavorite(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
