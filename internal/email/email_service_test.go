package email

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServiceSend(t *testing.T) {
	var got Message
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewHTTPService("key-123", srv.URL, "noreply@estate.example", "Estate")
	err := s.Send("tenant@example.com", "Rent due", "Your rent is due Friday.")

	require.NoError(t, err)
	assert.Equal(t, "Bearer key-123", gotAuth)
	assert.Equal(t, "Estate <noreply@estate.example>", got.From)
	assert.Equal(t, []string{"tenant@example.com"}, got.To)
	assert.Equal(t, "Rent due", got.Subject)
	assert.Equal(t, "Your rent is due Friday.", got.Text)
}

func TestHTTPServiceSendProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": "invalid recipient"}`))
	}))
	defer srv.Close()

	s := NewHTTPService("key-123", srv.URL, "noreply@estate.example", "Estate")
	err := s.Send("bad@", "Subject", "Body")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestHTTPServiceSendBulkContinuesPastFailures(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewHTTPService("key-123", srv.URL, "noreply@estate.example", "Estate")
	sent, failed, err := s.SendBulk([]string{"a@x.com", "b@x.com", "c@x.com"}, "Notice", "Body")

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, sent)
	assert.Equal(t, 1, failed)
}

func TestHTTPServiceSendBulkAllFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewHTTPService("key-123", srv.URL, "noreply@estate.example", "Estate")
	sent, failed, err := s.SendBulk([]string{"a@x.com", "b@x.com"}, "Notice", "Body")

	assert.Error(t, err)
	assert.Zero(t, sent)
	assert.Equal(t, 2, failed)
}

func TestMockServiceSend(t *testing.T) {
	s := NewMockService()
	assert.NoError(t, s.Send("tenant@example.com", "Subject", "Body"))

	sent, failed, err := s.SendBulk([]string{"a@x.com", "b@x.com"}, "Subject", "Body")
	assert.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Zero(t, failed)
}
