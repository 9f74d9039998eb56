package repositories

import (
	"testing"

	"estate-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositReviewable(t *testing.T) {
	tests := []struct {
		name        string
		paymentType string
		status      string
		isApproved  bool
		wantErr     error
	}{
		{"pending deposit", models.PaymentTypeDeposit, models.PaymentStatusPending, false, nil},
		{"already approved", models.PaymentTypeDeposit, models.PaymentStatusPaid, true, ErrDepositNotPending},
		{"approved but reset status", models.PaymentTypeDeposit, models.PaymentStatusPending, true, ErrDepositNotPending},
		{"rent payment", models.PaymentTypeRent, models.PaymentStatusPending, false, ErrDepositNotPending},
		{"withdrawal", models.PaymentTypeWithdrawal, models.PaymentStatusPaid, true, ErrDepositNotPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := depositReviewable(tt.paymentType, tt.status, tt.isApproved)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// A deposit credits the balance at most once: after approval flips it to
// Paid/approved, neither a decline nor a second approval passes the guard,
// so the approve-decline-approve sequence cannot credit twice.
func TestDepositDecisionIsTerminal(t *testing.T) {
	status, isApproved := models.PaymentStatusPending, false
	require.NoError(t, depositReviewable(models.PaymentTypeDeposit, status, isApproved))

	// Approval transition
	status, isApproved = models.PaymentStatusPaid, true

	assert.ErrorIs(t, depositReviewable(models.PaymentTypeDeposit, status, isApproved), ErrDepositNotPending)
}
