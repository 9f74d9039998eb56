package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"estate-backend/internal/metrics"
)

// Provider is an interface for sending transactional email
type Provider interface {
	Send(to, subject, body string) error
	SendBulk(to []string, subject, body string) (sent int, failed int, err error)
}

// Message is the JSON payload posted to the provider API
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// HTTPService implements Provider against an HTTP transactional-email API
type HTTPService struct {
	APIKey      string
	Endpoint    string
	FromAddress string
	FromName    string
	Client      *http.Client
}

// NewHTTPService creates a provider client for the configured endpoint
func NewHTTPService(apiKey, endpoint, fromAddress, fromName string) *HTTPService {
	return &HTTPService{
		APIKey:      apiKey,
		Endpoint:    endpoint,
		FromAddress: fromAddress,
		FromName:    fromName,
		Client:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Send sends a single email message
func (s *HTTPService) Send(to, subject, body string) error {
	msg := Message{
		From:    fmt.Sprintf("%s <%s>", s.FromName, s.FromAddress),
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		metrics.EmailsSent.WithLabelValues("error").Inc()
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		metrics.EmailsSent.WithLabelValues("error").Inc()
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, string(respBody))
	}

	metrics.EmailsSent.WithLabelValues("success").Inc()
	return nil
}

// SendBulk sends the same message to each recipient, continuing past
// per-recipient failures.
func (s *HTTPService) SendBulk(to []string, subject, body string) (int, int, error) {
	sent, failed := 0, 0
	for _, recipient := range to {
		if err := s.Send(recipient, subject, body); err != nil {
			log.Printf("[Email] Failed to send to %s: %v", recipient, err)
			failed++
			continue
		}
		sent++
	}
	if sent == 0 && failed > 0 {
		return sent, failed, fmt.Errorf("all %d sends failed", failed)
	}
	return sent, failed, nil
}

// MockService implements Provider by logging only. Used when no API key is
// configured.
type MockService struct{}

func NewMockService() *MockService {
	return &MockService{}
}

func (s *MockService) Send(to, subject, body string) error {
	log.Printf("[MockEmail] To: %s | Subject: %s | %s", to, subject, body)
	return nil
}

func (s *MockService) SendBulk(to []string, subject, body string) (int, int, error) {
	for _, recipient := range to {
		s.Send(recipient, subject, body)
	}
	return len(to), 0, nil
}
