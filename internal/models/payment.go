package models

import "time"

const (
	PaymentStatusPending       = "Pending"
	PaymentStatusPaid          = "Paid"
	PaymentStatusPartiallyPaid = "PartiallyPaid"
	PaymentStatusOverdue       = "Overdue"
)

const (
	PaymentTypeRent       = "Rent"
	PaymentTypeDeposit    = "Deposit"
	PaymentTypeWithdrawal = "Withdrawal"
)

type Payment struct {
	ID            int        `json:"id"`
	ReceiptNumber string     `json:"receipt_number"`
	LeaseID       *int       `json:"lease_id"`
	TenantID      int        `json:"tenant_id"`
	AmountDue     float64    `json:"amount_due"`
	AmountPaid    float64    `json:"amount_paid"`
	DueDate       *time.Time `json:"due_date"`
	PaymentDate   time.Time  `json:"payment_date"`
	Status        string     `json:"status"`
	PaymentType   string     `json:"payment_type"`
	IsApproved    bool       `json:"is_approved"`
	Destination   string     `json:"destination,omitempty"`
	ReceiptPath   string     `json:"receipt_path,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	PropertyName  string     `json:"property_name,omitempty"`
	TenantName    string     `json:"tenant_name,omitempty"`
}

// CreatePaymentRequest represents the request body for a tenant rent payment
type CreatePaymentRequest struct {
	LeaseID    int     `json:"lease_id"`
	AmountDue  float64 `json:"amount_due"`
	AmountPaid float64 `json:"amount_paid"`
}

// DepositRequest represents the request body for a tenant deposit request
type DepositRequest struct {
	Amount float64 `json:"amount"`
}

// DerivePaymentStatus maps the paid/due amounts onto a payment status:
// paid >= due is Paid, a partial amount is PartiallyPaid, otherwise Pending.
func DerivePaymentStatus(amountDue, amountPaid float64) string {
	switch {
	case amountPaid >= amountDue:
		return PaymentStatusPaid
	case amountPaid > 0:
		return PaymentStatusPartiallyPaid
	default:
		return PaymentStatusPending
	}
}
