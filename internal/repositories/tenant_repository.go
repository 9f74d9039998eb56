package repositories

import (
	"context"

	"estate-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TenantRepository struct {
	DB *pgxpool.Pool
}

func NewTenantRepository(db *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{DB: db}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *models.Tenant, passwordHash string) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO tenants (name, email, password_hash, phone_number)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, balance, is_suspended, created_at, updated_at`,
		tenant.Name, tenant.Email, passwordHash, tenant.PhoneNumber,
	).Scan(&tenant.ID, &tenant.Balance, &tenant.IsSuspended, &tenant.CreatedAt, &tenant.UpdatedAt)
}

func (r *TenantRepository) Get(ctx context.Context, id int) (*models.Tenant, error) {
	t := &models.Tenant{}
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, email, phone_number, balance, is_suspended, created_at, updated_at
		 FROM tenants WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Email, &t.PhoneNumber, &t.Balance, &t.IsSuspended, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetByEmail returns the tenant and its password hash for login checks.
func (r *TenantRepository) GetByEmail(ctx context.Context, email string) (*models.Tenant, string, error) {
	t := &models.Tenant{}
	var hash string
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, email, phone_number, balance, is_suspended, password_hash, created_at, updated_at
		 FROM tenants WHERE email = $1`, email,
	).Scan(&t.ID, &t.Name, &t.Email, &t.PhoneNumber, &t.Balance, &t.IsSuspended, &hash, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, "", err
	}
	return t, hash, nil
}

func (r *TenantRepository) Update(ctx context.Context, id int, req *models.UpdateTenantRequest) (*models.Tenant, error) {
	t := &models.Tenant{}
	err := r.DB.QueryRow(ctx,
		`UPDATE tenants SET name = $1, phone_number = $2, updated_at = NOW()
		 WHERE id = $3
		 RETURNING id, name, email, phone_number, balance, is_suspended, created_at, updated_at`,
		req.Name, req.PhoneNumber, id,
	).Scan(&t.ID, &t.Name, &t.Email, &t.PhoneNumber, &t.Balance, &t.IsSuspended, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TenantRepository) AddFavorite(ctx context.Context, tenantID, propertyID int) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO tenant_favorites (tenant_id, property_id)
		 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		tenantID, propertyID)
	return err
}

func (r *TenantRepository) RemoveFavorite(ctx context.Context, tenantID, propertyID int) error {
	_, err := r.DB.Exec(ctx,
		"DELETE FROM tenant_favorites WHERE tenant_id = $1 AND property_id = $2",
		tenantID, propertyID)
	return err
}

func (r *TenantRepository) ListFavorites(ctx context.Context, tenantID int) ([]*models.Property, error) {
	return r.listJoinedProperties(ctx, "tenant_favorites", tenantID)
}

// ListResidences returns the properties the tenant currently occupies.
func (r *TenantRepository) ListResidences(ctx context.Context, tenantID int) ([]*models.Property, error) {
	return r.listJoinedProperties(ctx, "tenant_residences", tenantID)
}

func (r *TenantRepository) listJoinedProperties(ctx context.Context, joinTable string, tenantID int) ([]*models.Property, error) {
	// joinTable is one of the two fixed association tables, never user input
	query := "SELECT " + propertySelectColumns + `
		FROM ` + joinTable + ` j
		JOIN properties p ON p.id = j.property_id
		JOIN locations l ON p.location_id = l.id
		WHERE j.tenant_id = $1
		ORDER BY j.created_at DESC`

	rows, err := r.DB.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// ListEmails returns all tenant email addresses for broadcast sends.
func (r *TenantRepository) ListEmails(ctx context.Context) ([]string, error) {
	rows, err := r.DB.Query(ctx, "SELECT email FROM tenants WHERE NOT is_suspended ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}
