package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"estate-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrInsufficientBalance rejects an approval or withdrawal the tenant
	// cannot cover.
	ErrInsufficientBalance = errors.New("insufficient tenant balance")
	// ErrAlreadyApproved guards against re-running an approval.
	ErrAlreadyApproved = errors.New("application already approved")
)

type ApplicationRepository struct {
	DB *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

// ApprovalResult carries everything created by a successful approval.
type ApprovalResult struct {
	Application *models.Application `json:"application"`
	Lease       *models.Lease       `json:"lease"`
	Payment     *models.Payment     `json:"payment"`
}

func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO applications (tenant_id, property_id, status, applicant_name, applicant_email, applicant_phone, message)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, application_date`,
		app.TenantID, app.PropertyID, models.ApplicationStatusPending,
		app.ApplicantName, app.ApplicantEmail, app.ApplicantPhone, app.Message,
	).Scan(&app.ID, &app.ApplicationDate)
}

const applicationSelectColumns = `
	a.id, a.tenant_id, a.property_id, a.status, a.applicant_name, a.applicant_email,
	a.applicant_phone, a.message, a.application_date, a.lease_id,
	p.name, l.address || ', ' || l.city, p.price_per_month`

func scanApplication(row pgx.Row) (*models.Application, error) {
	a := &models.Application{}
	err := row.Scan(
		&a.ID, &a.TenantID, &a.PropertyID, &a.Status, &a.ApplicantName, &a.ApplicantEmail,
		&a.ApplicantPhone, &a.Message, &a.ApplicationDate, &a.LeaseID,
		&a.PropertyName, &a.PropertyAddress, &a.PricePerMonth,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *ApplicationRepository) Get(ctx context.Context, id int) (*models.Application, error) {
	query := "SELECT " + applicationSelectColumns + `
		FROM applications a
		JOIN properties p ON a.property_id = p.id
		JOIN locations l ON p.location_id = l.id
		WHERE a.id = $1`
	return scanApplication(r.DB.QueryRow(ctx, query, id))
}

func (r *ApplicationRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.Application, error) {
	query := "SELECT " + applicationSelectColumns + `
		FROM applications a
		JOIN properties p ON a.property_id = p.id
		JOIN locations l ON p.location_id = l.id
		WHERE a.tenant_id = $1
		ORDER BY a.application_date DESC`
	return r.list(ctx, query, tenantID)
}

// ListByManager returns applications targeting any of the manager's
// properties.
func (r *ApplicationRepository) ListByManager(ctx context.Context, managerID int) ([]*models.Application, error) {
	query := "SELECT " + applicationSelectColumns + `
		FROM applications a
		JOIN properties p ON a.property_id = p.id
		JOIN locations l ON p.location_id = l.id
		WHERE p.manager_id = $1
		ORDER BY a.application_date DESC`
	return r.list(ctx, query, managerID)
}

func (r *ApplicationRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Application, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// UpdateStatus sets a non-Approved status. Only the status column changes.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	tag, err := r.DB.Exec(ctx,
		"UPDATE applications SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Approve runs the approval workflow in a single serializable transaction:
// lock the tenant row, re-check the balance, debit first month's rent,
// create the lease and its initial Paid payment, record occupancy and stamp
// the application. Any failure rolls the whole sequence back.
func (r *ApplicationRepository) Approve(ctx context.Context, id int) (*ApprovalResult, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var (
		status     string
		tenantID   int
		propertyID int
	)
	err = tx.QueryRow(ctx,
		"SELECT status, tenant_id, property_id FROM applications WHERE id = $1 FOR UPDATE", id,
	).Scan(&status, &tenantID, &propertyID)
	if err != nil {
		return nil, err
	}
	if status == models.ApplicationStatusApproved {
		return nil, ErrAlreadyApproved
	}

	var rent, deposit float64
	err = tx.QueryRow(ctx,
		"SELECT price_per_month, security_deposit FROM properties WHERE id = $1", propertyID,
	).Scan(&rent, &deposit)
	if err != nil {
		return nil, err
	}

	// Lock the tenant row so a concurrent wallet mutation cannot race the
	// balance check.
	var balance float64
	err = tx.QueryRow(ctx,
		"SELECT balance FROM tenants WHERE id = $1 FOR UPDATE", tenantID,
	).Scan(&balance)
	if err != nil {
		return nil, err
	}
	if balance < rent {
		return nil, ErrInsufficientBalance
	}

	if _, err := tx.Exec(ctx,
		"UPDATE tenants SET balance = balance - $1, updated_at = NOW() WHERE id = $2",
		rent, tenantID); err != nil {
		return nil, err
	}

	start, end := models.LeaseTerm(time.Now())
	lease := &models.Lease{
		PropertyID: propertyID,
		TenantID:   tenantID,
		StartDate:  start,
		EndDate:    end,
		Rent:       rent,
		Deposit:    deposit,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO leases (property_id, tenant_id, start_date, end_date, rent, deposit)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		propertyID, tenantID, start, end, rent, deposit,
	).Scan(&lease.ID, &lease.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create lease: %w", err)
	}

	receiptNumber, err := nextReceiptNumber(ctx, tx)
	if err != nil {
		return nil, err
	}
	payment := &models.Payment{
		ReceiptNumber: receiptNumber,
		LeaseID:       &lease.ID,
		TenantID:      tenantID,
		AmountDue:     rent,
		AmountPaid:    rent,
		Status:        models.PaymentStatusPaid,
		PaymentType:   models.PaymentTypeRent,
		IsApproved:    true,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO payments (receipt_number, lease_id, tenant_id, amount_due, amount_paid, due_date, status, payment_type, is_approved)
		 VALUES ($1, $2, $3, $4, $5, NOW(), $6, $7, TRUE)
		 RETURNING id, payment_date, created_at`,
		receiptNumber, lease.ID, tenantID, rent, rent,
		models.PaymentStatusPaid, models.PaymentTypeRent,
	).Scan(&payment.ID, &payment.PaymentDate, &payment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create initial payment: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO tenant_residences (tenant_id, property_id)
		 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		tenantID, propertyID); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		"UPDATE applications SET status = $1, lease_id = $2 WHERE id = $3",
		models.ApplicationStatusApproved, lease.ID, id); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	app, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ApprovalResult{Application: app, Lease: lease, Payment: payment}, nil
}
