package models

import "time"

type Tenant struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Balance     float64   `json:"balance"`
	IsSuspended bool      `json:"is_suspended"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateTenantRequest represents the request body for updating a tenant profile
type UpdateTenantRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// FundTenantRequest is a manual balance credit issued by a manager
type FundTenantRequest struct {
	Amount float64 `json:"amount"`
	Notes  string  `json:"notes"`
}

// WithdrawRequest debits the tenant balance to an external destination
type WithdrawRequest struct {
	Amount      float64 `json:"amount"`
	Destination string  `json:"destination"`
}
