package repositories

import (
	"context"
	"errors"
	"fmt"

	"estate-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDepositNotPending rejects approving or declining a deposit that has
// already been settled.
var ErrDepositNotPending = errors.New("deposit is not pending approval")

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func nextReceiptNumber(ctx context.Context, q queryRower) (string, error) {
	var nextNum int
	if err := q.QueryRow(ctx, "SELECT nextval('receipt_number_sequence')").Scan(&nextNum); err != nil {
		return "", fmt.Errorf("failed to get next receipt number: %w", err)
	}
	return fmt.Sprintf("RCP-%06d", nextNum), nil
}

// Create inserts a rent payment outside of any wallet mutation.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	receiptNumber, err := nextReceiptNumber(ctx, r.DB)
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx,
		`INSERT INTO payments (receipt_number, lease_id, tenant_id, amount_due, amount_paid, due_date, status, payment_type, is_approved, destination)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, payment_date, created_at`,
		receiptNumber, payment.LeaseID, payment.TenantID,
		payment.AmountDue, payment.AmountPaid, payment.DueDate,
		payment.Status, payment.PaymentType, payment.IsApproved, payment.Destination,
	).Scan(&payment.ID, &payment.PaymentDate, &payment.CreatedAt)
	if err != nil {
		return err
	}

	payment.ReceiptNumber = receiptNumber
	return nil
}

const paymentSelectColumns = `
	py.id, py.receipt_number, py.lease_id, py.tenant_id, py.amount_due, py.amount_paid,
	py.due_date, py.payment_date, py.status, py.payment_type, py.is_approved,
	py.destination, py.receipt_path, py.created_at,
	COALESCE(p.name, ''), t.name`

func scanPayment(row pgx.Row) (*models.Payment, error) {
	py := &models.Payment{}
	err := row.Scan(
		&py.ID, &py.ReceiptNumber, &py.LeaseID, &py.TenantID, &py.AmountDue, &py.AmountPaid,
		&py.DueDate, &py.PaymentDate, &py.Status, &py.PaymentType, &py.IsApproved,
		&py.Destination, &py.ReceiptPath, &py.CreatedAt,
		&py.PropertyName, &py.TenantName,
	)
	if err != nil {
		return nil, err
	}
	return py, nil
}

const paymentFromClause = `
	FROM payments py
	JOIN tenants t ON py.tenant_id = t.id
	LEFT JOIN leases le ON py.lease_id = le.id
	LEFT JOIN properties p ON le.property_id = p.id`

func (r *PaymentRepository) Get(ctx context.Context, id int) (*models.Payment, error) {
	query := "SELECT " + paymentSelectColumns + paymentFromClause + " WHERE py.id = $1"
	return scanPayment(r.DB.QueryRow(ctx, query, id))
}

// ListByTenant returns a tenant's payments with lease and property context,
// newest first.
func (r *PaymentRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.Payment, error) {
	query := "SELECT " + paymentSelectColumns + paymentFromClause + `
		WHERE py.tenant_id = $1
		ORDER BY py.payment_date DESC, py.id DESC`
	return r.list(ctx, query, tenantID)
}

func (r *PaymentRepository) ListByLease(ctx context.Context, leaseID int) ([]*models.Payment, error) {
	query := "SELECT " + paymentSelectColumns + paymentFromClause + `
		WHERE py.lease_id = $1
		ORDER BY py.payment_date DESC, py.id DESC`
	return r.list(ctx, query, leaseID)
}

// ListPendingDeposits returns unapproved deposit requests for manager review.
func (r *PaymentRepository) ListPendingDeposits(ctx context.Context) ([]*models.Payment, error) {
	query := "SELECT " + paymentSelectColumns + paymentFromClause + `
		WHERE py.payment_type = $1 AND py.status = $2 AND NOT py.is_approved
		ORDER BY py.created_at DESC`
	return r.list(ctx, query, models.PaymentTypeDeposit, models.PaymentStatusPending)
}

func (r *PaymentRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		py, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, py)
	}
	return payments, rows.Err()
}

// depositReviewable reports whether a payment row is still open for a
// deposit decision. Only Pending, unapproved Deposit rows may be approved
// or declined; anything else means the decision already happened.
func depositReviewable(paymentType, status string, isApproved bool) error {
	if paymentType != models.PaymentTypeDeposit || status != models.PaymentStatusPending || isApproved {
		return ErrDepositNotPending
	}
	return nil
}

// ApproveDeposit marks the deposit Paid and approved and credits the tenant
// balance by the due amount, atomically.
func (r *PaymentRepository) ApproveDeposit(ctx context.Context, paymentID int) (*models.Payment, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var (
		tenantID    int
		amountDue   float64
		status      string
		paymentType string
		isApproved  bool
	)
	err = tx.QueryRow(ctx,
		"SELECT tenant_id, amount_due, status, payment_type, is_approved FROM payments WHERE id = $1 FOR UPDATE",
		paymentID,
	).Scan(&tenantID, &amountDue, &status, &paymentType, &isApproved)
	if err != nil {
		return nil, err
	}
	if err := depositReviewable(paymentType, status, isApproved); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE payments SET status = $1, amount_paid = amount_due, is_approved = TRUE, payment_date = NOW()
		 WHERE id = $2`,
		models.PaymentStatusPaid, paymentID); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		"UPDATE tenants SET balance = balance + $1, updated_at = NOW() WHERE id = $2",
		amountDue, tenantID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.Get(ctx, paymentID)
}

// DeclineDeposit rejects a pending deposit request. The row stays Pending
// and unapproved for re-review and the balance is never touched. A deposit
// that was already approved cannot be declined; approval is the only
// transition that credits the balance, exactly once.
func (r *PaymentRepository) DeclineDeposit(ctx context.Context, paymentID int) (*models.Payment, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var (
		status      string
		paymentType string
		isApproved  bool
	)
	err = tx.QueryRow(ctx,
		"SELECT status, payment_type, is_approved FROM payments WHERE id = $1 FOR UPDATE",
		paymentID,
	).Scan(&status, &paymentType, &isApproved)
	if err != nil {
		return nil, err
	}
	if err := depositReviewable(paymentType, status, isApproved); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		"UPDATE payments SET status = $1, is_approved = FALSE WHERE id = $2",
		models.PaymentStatusPending, paymentID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.Get(ctx, paymentID)
}

// Withdraw debits the tenant balance and records the Withdrawal payment in
// one transaction. The balance is re-read under a row lock so two
// concurrent withdrawals cannot jointly overdraw.
func (r *PaymentRepository) Withdraw(ctx context.Context, tenantID int, amount float64, destination string) (*models.Payment, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var balance float64
	err = tx.QueryRow(ctx,
		"SELECT balance FROM tenants WHERE id = $1 FOR UPDATE", tenantID,
	).Scan(&balance)
	if err != nil {
		return nil, err
	}
	if balance < amount {
		return nil, ErrInsufficientBalance
	}

	if _, err := tx.Exec(ctx,
		"UPDATE tenants SET balance = balance - $1, updated_at = NOW() WHERE id = $2",
		amount, tenantID); err != nil {
		return nil, err
	}

	receiptNumber, err := nextReceiptNumber(ctx, tx)
	if err != nil {
		return nil, err
	}
	payment := &models.Payment{
		ReceiptNumber: receiptNumber,
		TenantID:      tenantID,
		AmountDue:     amount,
		AmountPaid:    amount,
		Status:        models.PaymentStatusPaid,
		PaymentType:   models.PaymentTypeWithdrawal,
		IsApproved:    true,
		Destination:   destination,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO payments (receipt_number, tenant_id, amount_due, amount_paid, status, payment_type, is_approved, destination)
		 VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)
		 RETURNING id, payment_date, created_at`,
		receiptNumber, tenantID, amount, amount,
		models.PaymentStatusPaid, models.PaymentTypeWithdrawal, destination,
	).Scan(&payment.ID, &payment.PaymentDate, &payment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record withdrawal: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return payment, nil
}

// Fund credits the tenant balance and records an approved Deposit payment
// in one transaction.
func (r *PaymentRepository) Fund(ctx context.Context, tenantID int, amount float64) (*models.Payment, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		"UPDATE tenants SET balance = balance + $1, updated_at = NOW() WHERE id = $2",
		amount, tenantID); err != nil {
		return nil, err
	}

	receiptNumber, err := nextReceiptNumber(ctx, tx)
	if err != nil {
		return nil, err
	}
	payment := &models.Payment{
		ReceiptNumber: receiptNumber,
		TenantID:      tenantID,
		AmountDue:     amount,
		AmountPaid:    amount,
		Status:        models.PaymentStatusPaid,
		PaymentType:   models.PaymentTypeDeposit,
		IsApproved:    true,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO payments (receipt_number, tenant_id, amount_due, amount_paid, status, payment_type, is_approved)
		 VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		 RETURNING id, payment_date, created_at`,
		receiptNumber, tenantID, amount, amount,
		models.PaymentStatusPaid, models.PaymentTypeDeposit,
	).Scan(&payment.ID, &payment.PaymentDate, &payment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record funding: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdateReceiptPath records where the rendered receipt PDF was cached.
func (r *PaymentRepository) UpdateReceiptPath(ctx context.Context, paymentID int, path string) error {
	_, err := r.DB.Exec(ctx,
		"UPDATE payments SET receipt_path = $1 WHERE id = $2", path, paymentID)
	return err
}
