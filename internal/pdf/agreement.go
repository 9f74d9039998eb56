package pdf

import (
	"bytes"
	"fmt"

	"estate-backend/internal/models"

	"github.com/jung-kurt/gofpdf/v2"
)

// AgreementDocument is the typed content of a lease agreement.
type AgreementDocument struct {
	LeaseID      int
	PropertyName string
	TenantName   string
	StartDate    string
	EndDate      string
	Rent         float64
	Deposit      float64
}

// BuildAgreement maps a lease row onto its agreement content.
func BuildAgreement(lease *models.Lease) AgreementDocument {
	return AgreementDocument{
		LeaseID:      lease.ID,
		PropertyName: lease.PropertyName,
		TenantName:   lease.TenantName,
		StartDate:    lease.StartDate.Format("02-Jan-2006"),
		EndDate:      lease.EndDate.Format("02-Jan-2006"),
		Rent:         lease.Rent,
		Deposit:      lease.Deposit,
	}
}

// RenderAgreement renders the lease agreement as PDF bytes. Metadata dates
// come from the lease row, not the wall clock.
func RenderAgreement(lease *models.Lease) ([]byte, error) {
	doc := BuildAgreement(lease)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(lease.StartDate.UTC())
	pdf.SetModificationDate(lease.StartDate.UTC())
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Residential Lease Agreement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Lease No: %d", doc.LeaseID), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Parties", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Property: %s", doc.PropertyName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Tenant: %s", doc.TenantName), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Terms", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(47, 7, "Start Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(47, 7, "End Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(48, 7, "Monthly Rent", "1", 0, "C", true, 0, "")
	pdf.CellFormat(48, 7, "Security Deposit", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(47, 6, doc.StartDate, "1", 0, "C", false, 0, "")
	pdf.CellFormat(47, 6, doc.EndDate, "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 6, fmt.Sprintf("$%.2f", doc.Rent), "1", 0, "R", false, 0, "")
	pdf.CellFormat(48, 6, fmt.Sprintf("$%.2f", doc.Deposit), "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(190, 5,
		"The tenant agrees to pay the monthly rent on or before the first day of each month. "+
			"The security deposit is refundable at the end of the lease term subject to a "+
			"satisfactory inspection of the premises. Either party may terminate this agreement "+
			"per the notice terms agreed separately in writing.",
		"", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render agreement: %w", err)
	}
	return buf.Bytes(), nil
}
