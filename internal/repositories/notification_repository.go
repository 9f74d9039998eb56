package repositories

import (
	"context"

	"estate-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	DB *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO notifications (user_id, user_role, kind, title, body)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		n.UserID, n.UserRole, n.Kind, n.Title, n.Body,
	).Scan(&n.ID, &n.CreatedAt)
}

// ListByUser returns a user's notifications of the given kind, newest first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int, role, kind string) ([]*models.Notification, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, user_role, kind, title, body, is_read, created_at
		 FROM notifications
		 WHERE user_id = $1 AND user_role = $2 AND kind = $3
		 ORDER BY created_at DESC`,
		userID, role, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		err := rows.Scan(&n.ID, &n.UserID, &n.UserRole, &n.Kind, &n.Title, &n.Body, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
