package pdf

import (
	"testing"
	"time"

	"estate-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayment() *models.Payment {
	return &models.Payment{
		ID:            12,
		ReceiptNumber: "RCP-000012",
		TenantID:      7,
		AmountDue:     1200,
		AmountPaid:    1200,
		PaymentDate:   time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		Status:        models.PaymentStatusPaid,
		PaymentType:   models.PaymentTypeRent,
		TenantName:    "Jamie Park",
		PropertyName:  "Sunset Lofts 4B",
	}
}

func testLease() *models.Lease {
	return &models.Lease{
		ID:           5,
		PropertyID:   3,
		TenantID:     7,
		StartDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Rent:         1200,
		Deposit:      2400,
		PropertyName: "Sunset Lofts 4B",
		TenantName:   "Jamie Park",
	}
}

func TestBuildReceipt(t *testing.T) {
	doc := BuildReceipt(testPayment())

	assert.Equal(t, "RCP-000012", doc.ReceiptNumber)
	assert.Equal(t, "Jamie Park", doc.TenantName)
	assert.Equal(t, "Sunset Lofts 4B", doc.PropertyName)
	assert.Equal(t, models.PaymentTypeRent, doc.PaymentType)
	assert.Equal(t, models.PaymentStatusPaid, doc.Status)
	assert.Equal(t, 1200.0, doc.AmountDue)
	assert.Equal(t, "01-Jun-2025", doc.PaymentDate)
}

func TestRenderReceipt(t *testing.T) {
	data, err := RenderReceipt(testPayment())
	require.NoError(t, err)

	require.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderReceiptWithoutProperty(t *testing.T) {
	payment := testPayment()
	payment.PropertyName = ""
	payment.PaymentType = models.PaymentTypeDeposit

	data, err := RenderReceipt(payment)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBuildAgreement(t *testing.T) {
	doc := BuildAgreement(testLease())

	assert.Equal(t, 5, doc.LeaseID)
	assert.Equal(t, "01-Jun-2025", doc.StartDate)
	assert.Equal(t, "01-Jun-2026", doc.EndDate)
	assert.Equal(t, 1200.0, doc.Rent)
	assert.Equal(t, 2400.0, doc.Deposit)
}

func TestRenderAgreement(t *testing.T) {
	data, err := RenderAgreement(testLease())
	require.NoError(t, err)

	require.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

// Both builders are pure functions of the record, so two builds of the
// same row carry identical rendered field content.
func TestBuildIsPureFunctionOfRecord(t *testing.T) {
	assert.Equal(t, BuildReceipt(testPayment()), BuildReceipt(testPayment()))
	assert.Equal(t, BuildAgreement(testLease()), BuildAgreement(testLease()))
}
