package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name       string
		amountDue  float64
		amountPaid float64
		expected   string
	}{
		{"fully paid", 1200, 1200, PaymentStatusPaid},
		{"overpaid", 1200, 1500, PaymentStatusPaid},
		{"partial", 1200, 600, PaymentStatusPartiallyPaid},
		{"nothing paid", 1200, 0, PaymentStatusPending},
		{"zero due zero paid", 0, 0, PaymentStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DerivePaymentStatus(tt.amountDue, tt.amountPaid))
		})
	}
}
