package services

import (
	"context"
	"log"

	"estate-backend/internal/email"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
)

// NotificationService delivers email through the configured provider and
// mirrors every send into the in-app notification feed.
type NotificationService struct {
	provider    email.Provider
	repo        *repositories.NotificationRepository
	tenantRepo  *repositories.TenantRepository
	managerRepo *repositories.ManagerRepository
}

func NewNotificationService(provider email.Provider, repo *repositories.NotificationRepository, tenantRepo *repositories.TenantRepository, managerRepo *repositories.ManagerRepository) *NotificationService {
	return &NotificationService{provider: provider, repo: repo, tenantRepo: tenantRepo, managerRepo: managerRepo}
}

// RecordAlert fans an operational alert out to every manager's alert feed.
// No email is sent for alerts.
func (s *NotificationService) RecordAlert(ctx context.Context, title, body string) error {
	ids, err := s.managerRepo.ListIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		n := &models.Notification{
			UserID:   id,
			UserRole: models.RoleManager,
			Kind:     models.NotificationKindAlert,
			Title:    title,
			Body:     body,
		}
		if err := s.repo.Create(ctx, n); err != nil {
			log.Printf("[Notify] Failed to record alert for manager %d: %v", id, err)
		}
	}
	return nil
}

// NotifyTenant emails a tenant and records the message in their feed. The
// feed row is written even when the email provider fails, so the tenant
// still sees the update in-app.
func (s *NotificationService) NotifyTenant(ctx context.Context, tenantID int, address, subject, body string) error {
	n := &models.Notification{
		UserID:   tenantID,
		UserRole: models.RoleTenant,
		Kind:     models.NotificationKindMessage,
		Title:    subject,
		Body:     body,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("[Notify] Failed to record notification for tenant %d: %v", tenantID, err)
	}
	return s.provider.Send(address, subject, body)
}

// SendToTenant emails an arbitrary tenant address on behalf of a manager.
func (s *NotificationService) SendToTenant(ctx context.Context, req *models.SendEmailRequest) error {
	tenant, _, err := s.tenantRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		n := &models.Notification{
			UserID:   tenant.ID,
			UserRole: models.RoleTenant,
			Kind:     models.NotificationKindMessage,
			Title:    req.Subject,
			Body:     req.Body,
		}
		if err := s.repo.Create(ctx, n); err != nil {
			log.Printf("[Notify] Failed to record notification for %s: %v", req.Email, err)
		}
	}
	return s.provider.Send(req.Email, req.Subject, req.Body)
}

// Broadcast emails every active tenant. Suspended tenants are excluded at
// the repository level. Returns the sent and failed counts.
func (s *NotificationService) Broadcast(ctx context.Context, req *models.BroadcastEmailRequest) (int, int, error) {
	recipients, err := s.tenantRepo.ListEmails(ctx)
	if err != nil {
		return 0, 0, err
	}
	return s.provider.SendBulk(recipients, req.Subject, req.Body)
}

// Feed returns a user's in-app notifications of the given kind, newest
// first.
func (s *NotificationService) Feed(ctx context.Context, userID int, role, kind string) ([]*models.Notification, error) {
	if kind == "" {
		kind = models.NotificationKindMessage
	}
	return s.repo.ListByUser(ctx, userID, role, kind)
}
