package models

import "time"

const (
	NotificationKindMessage = "message"
	NotificationKindAlert   = "alert"
)

type Notification struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	UserRole  string    `json:"user_role"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// SendEmailRequest represents the request body for a single email send
type SendEmailRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// BroadcastEmailRequest represents the request body for an email blast
type BroadcastEmailRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
