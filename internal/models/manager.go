package models

import "time"

type Manager struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateManagerRequest represents the request body for updating a manager profile
type UpdateManagerRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}
