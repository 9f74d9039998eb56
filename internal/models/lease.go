package models

import "time"

// DefaultLeaseTerm is the lease length created on application approval.
const DefaultLeaseTermMonths = 12

type Lease struct {
	ID            int       `json:"id"`
	PropertyID    int       `json:"property_id"`
	TenantID      int       `json:"tenant_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Rent          float64   `json:"rent"`
	Deposit       float64   `json:"deposit"`
	AgreementPath string    `json:"agreement_path,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	PropertyName  string    `json:"property_name,omitempty"`
	TenantName    string    `json:"tenant_name,omitempty"`
}

// LeaseTerm returns the [start, end) range for a lease beginning at start.
func LeaseTerm(start time.Time) (time.Time, time.Time) {
	return start, start.AddDate(0, DefaultLeaseTermMonths, 0)
}
