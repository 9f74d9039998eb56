package models

import "time"

const (
	ApplicationStatusPending  = "Pending"
	ApplicationStatusDenied   = "Denied"
	ApplicationStatusApproved = "Approved"
)

type Application struct {
	ID              int       `json:"id"`
	TenantID        int       `json:"tenant_id"`
	PropertyID      int       `json:"property_id"`
	Status          string    `json:"status"`
	ApplicantName   string    `json:"applicant_name"`
	ApplicantEmail  string    `json:"applicant_email"`
	ApplicantPhone  string    `json:"applicant_phone"`
	Message         string    `json:"message"`
	ApplicationDate time.Time `json:"application_date"`
	LeaseID         *int      `json:"lease_id"`
	PropertyName    string    `json:"property_name,omitempty"`
	PropertyAddress string    `json:"property_address,omitempty"`
	PricePerMonth   float64   `json:"price_per_month,omitempty"`
}

// CreateApplicationRequest represents the request body for submitting an application
type CreateApplicationRequest struct {
	PropertyID     int    `json:"property_id"`
	ApplicantName  string `json:"applicant_name"`
	ApplicantEmail string `json:"applicant_email"`
	ApplicantPhone string `json:"applicant_phone"`
	Message        string `json:"message"`
}

// UpdateApplicationStatusRequest represents the request body for a status transition
type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

// ValidApplicationStatus reports whether s is one of the allowed statuses.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusDenied, ApplicationStatusApproved:
		return true
	}
	return false
}
