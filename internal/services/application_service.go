package services

import (
	"context"
	"fmt"
	"log"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
)

type ApplicationService struct {
	repo         *repositories.ApplicationRepository
	propertyRepo *repositories.PropertyRepository
	notifier     *NotificationService
}

func NewApplicationService(repo *repositories.ApplicationRepository, propertyRepo *repositories.PropertyRepository) *ApplicationService {
	return &ApplicationService{repo: repo, propertyRepo: propertyRepo}
}

// SetNotifier wires the optional decision notification sender.
func (s *ApplicationService) SetNotifier(notifier *NotificationService) {
	s.notifier = notifier
}

func (s *ApplicationService) Create(ctx context.Context, tenantID int, req *models.CreateApplicationRequest) (*models.Application, error) {
	// Referenced property must exist before accepting the application
	if _, err := s.propertyRepo.Get(ctx, req.PropertyID); err != nil {
		return nil, err
	}

	app := &models.Application{
		TenantID:       tenantID,
		PropertyID:     req.PropertyID,
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		ApplicantPhone: req.ApplicantPhone,
		Message:        req.Message,
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, app.ID)
}

// ListForUser returns the applications visible to the caller: a tenant sees
// their own, a manager sees applications against their properties.
func (s *ApplicationService) ListForUser(ctx context.Context, userID int, role string) ([]*models.Application, error) {
	if role == models.RoleManager {
		return s.repo.ListByManager(ctx, userID)
	}
	return s.repo.ListByTenant(ctx, userID)
}

// UpdateStatus applies a status transition. Approval runs the full
// transactional workflow; any other status touches only the status column.
// The acting manager must own the property the application targets.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id, managerID int, status string) (*repositories.ApprovalResult, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, fmt.Errorf("invalid application status %q", status)
	}

	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	property, err := s.propertyRepo.Get(ctx, app.PropertyID)
	if err != nil {
		return nil, err
	}
	if property.ManagerID != managerID {
		return nil, ErrNotOwner
	}

	var result *repositories.ApprovalResult
	if status == models.ApplicationStatusApproved {
		result, err = s.repo.Approve(ctx, id)
		if err != nil {
			return nil, err
		}
	} else {
		if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
		updated, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		result = &repositories.ApprovalResult{Application: updated}
	}

	// Decision notifications are best-effort and never fail the update
	if s.notifier != nil {
		title := fmt.Sprintf("Application %s", status)
		body := fmt.Sprintf("Your application for %s has been %s.", app.PropertyName, status)
		if err := s.notifier.NotifyTenant(ctx, app.TenantID, app.ApplicantEmail, title, body); err != nil {
			log.Printf("[Applications] Failed to notify tenant %d: %v", app.TenantID, err)
		}
	}

	return result, nil
}
