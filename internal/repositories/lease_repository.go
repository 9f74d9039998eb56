package repositories

import (
	"context"

	"estate-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LeaseRepository struct {
	DB *pgxpool.Pool
}

func NewLeaseRepository(db *pgxpool.Pool) *LeaseRepository {
	return &LeaseRepository{DB: db}
}

const leaseSelectColumns = `
	le.id, le.property_id, le.tenant_id, le.start_date, le.end_date,
	le.rent, le.deposit, le.agreement_path, le.created_at, p.name, t.name`

func scanLease(row pgx.Row) (*models.Lease, error) {
	le := &models.Lease{}
	err := row.Scan(
		&le.ID, &le.PropertyID, &le.TenantID, &le.StartDate, &le.EndDate,
		&le.Rent, &le.Deposit, &le.AgreementPath, &le.CreatedAt,
		&le.PropertyName, &le.TenantName,
	)
	if err != nil {
		return nil, err
	}
	return le, nil
}

const leaseFromClause = `
	FROM leases le
	JOIN properties p ON le.property_id = p.id
	JOIN tenants t ON le.tenant_id = t.id`

func (r *LeaseRepository) Get(ctx context.Context, id int) (*models.Lease, error) {
	query := "SELECT " + leaseSelectColumns + leaseFromClause + " WHERE le.id = $1"
	return scanLease(r.DB.QueryRow(ctx, query, id))
}

func (r *LeaseRepository) List(ctx context.Context) ([]*models.Lease, error) {
	query := "SELECT " + leaseSelectColumns + leaseFromClause + " ORDER BY le.start_date DESC"
	return r.list(ctx, query)
}

func (r *LeaseRepository) ListByProperty(ctx context.Context, propertyID int) ([]*models.Lease, error) {
	query := "SELECT " + leaseSelectColumns + leaseFromClause + `
		WHERE le.property_id = $1
		ORDER BY le.start_date DESC`
	return r.list(ctx, query, propertyID)
}

func (r *LeaseRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.Lease, error) {
	query := "SELECT " + leaseSelectColumns + leaseFromClause + `
		WHERE le.tenant_id = $1
		ORDER BY le.start_date DESC`
	return r.list(ctx, query, tenantID)
}

func (r *LeaseRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Lease, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leases []*models.Lease
	for rows.Next() {
		le, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		leases = append(leases, le)
	}
	return leases, rows.Err()
}

// UpdateAgreementPath records where the rendered agreement PDF was cached.
func (r *LeaseRepository) UpdateAgreementPath(ctx context.Context, leaseID int, path string) error {
	_, err := r.DB.Exec(ctx,
		"UPDATE leases SET agreement_path = $1 WHERE id = $2", path, leaseID)
	return err
}
