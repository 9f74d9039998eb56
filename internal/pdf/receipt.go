package pdf

import (
	"bytes"
	"fmt"

	"estate-backend/internal/models"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReceiptDocument is the typed content of a payment receipt. Building it
// separately from rendering keeps the PDF output a pure function of the
// payment row.
type ReceiptDocument struct {
	ReceiptNumber string
	TenantName    string
	PropertyName  string
	PaymentType   string
	Status        string
	AmountDue     float64
	AmountPaid    float64
	PaymentDate   string
}

// BuildReceipt maps a payment row onto its receipt content.
func BuildReceipt(payment *models.Payment) ReceiptDocument {
	return ReceiptDocument{
		ReceiptNumber: payment.ReceiptNumber,
		TenantName:    payment.TenantName,
		PropertyName:  payment.PropertyName,
		PaymentType:   payment.PaymentType,
		Status:        payment.Status,
		AmountDue:     payment.AmountDue,
		AmountPaid:    payment.AmountPaid,
		PaymentDate:   payment.PaymentDate.Format("02-Jan-2006"),
	}
}

// RenderReceipt renders the receipt as PDF bytes. Document metadata dates
// come from the payment row, not the wall clock, so regenerating a receipt
// never claims a new creation time.
func RenderReceipt(payment *models.Payment) ([]byte, error) {
	doc := BuildReceipt(payment)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(payment.PaymentDate.UTC())
	pdf.SetModificationDate(payment.PaymentDate.UTC())
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Payment Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Receipt No: %s", doc.ReceiptNumber), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Payment Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Payment Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Tenant: %s", doc.TenantName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", doc.PaymentDate), "RB", 1, "L", false, 0, "")
	if doc.PropertyName != "" {
		pdf.CellFormat(95, 7, fmt.Sprintf("Property: %s", doc.PropertyName), "LB", 0, "L", false, 0, "")
	} else {
		pdf.CellFormat(95, 7, "", "LB", 0, "L", false, 0, "")
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Type: %s", doc.PaymentType), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Amounts table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(63, 7, "Amount Due", "1", 0, "C", true, 0, "")
	pdf.CellFormat(63, 7, "Amount Paid", "1", 0, "C", true, 0, "")
	pdf.CellFormat(64, 7, "Status", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(63, 6, fmt.Sprintf("$%.2f", doc.AmountDue), "1", 0, "R", false, 0, "")
	pdf.CellFormat(63, 6, fmt.Sprintf("$%.2f", doc.AmountPaid), "1", 0, "R", false, 0, "")
	pdf.CellFormat(64, 6, doc.Status, "1", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Status banner
	if doc.Status == models.PaymentStatusPaid {
		pdf.SetFillColor(200, 255, 200)
	} else {
		pdf.SetFillColor(255, 200, 200)
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, fmt.Sprintf("%s - $%.2f", doc.Status, doc.AmountPaid), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
