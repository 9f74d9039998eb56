package repositories

import (
	"context"

	"estate-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ManagerRepository struct {
	DB *pgxpool.Pool
}

func NewManagerRepository(db *pgxpool.Pool) *ManagerRepository {
	return &ManagerRepository{DB: db}
}

func (r *ManagerRepository) Create(ctx context.Context, manager *models.Manager, passwordHash string) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO managers (name, email, password_hash, phone_number)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		manager.Name, manager.Email, passwordHash, manager.PhoneNumber,
	).Scan(&manager.ID, &manager.CreatedAt, &manager.UpdatedAt)
}

func (r *ManagerRepository) Get(ctx context.Context, id int) (*models.Manager, error) {
	m := &models.Manager{}
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, email, phone_number, created_at, updated_at
		 FROM managers WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.PhoneNumber, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// GetByEmail returns the manager and its password hash for login checks.
func (r *ManagerRepository) GetByEmail(ctx context.Context, email string) (*models.Manager, string, error) {
	m := &models.Manager{}
	var hash string
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, email, phone_number, password_hash, created_at, updated_at
		 FROM managers WHERE email = $1`, email,
	).Scan(&m.ID, &m.Name, &m.Email, &m.PhoneNumber, &hash, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, "", err
	}
	return m, hash, nil
}

func (r *ManagerRepository) Update(ctx context.Context, id int, req *models.UpdateManagerRequest) (*models.Manager, error) {
	m := &models.Manager{}
	err := r.DB.QueryRow(ctx,
		`UPDATE managers SET name = $1, phone_number = $2, updated_at = NOW()
		 WHERE id = $3
		 RETURNING id, name, email, phone_number, created_at, updated_at`,
		req.Name, req.PhoneNumber, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.PhoneNumber, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListIDs returns all manager IDs, used when fanning out alert
// notifications.
func (r *ManagerRepository) ListIDs(ctx context.Context) ([]int, error) {
	rows, err := r.DB.Query(ctx, "SELECT id FROM managers ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListEmails returns all manager email addresses for broadcast sends.
func (r *ManagerRepository) ListEmails(ctx context.Context) ([]string, error) {
	rows, err := r.DB.Query(ctx, "SELECT email FROM managers ORDER BY id")
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
