package services

import (
	"context"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
)

type LeaseService struct {
	repo         *repositories.LeaseRepository
	propertyRepo *repositories.PropertyRepository
}

func NewLeaseService(repo *repositories.LeaseRepository, propertyRepo *repositories.PropertyRepository) *LeaseService {
	return &LeaseService{repo: repo, propertyRepo: propertyRepo}
}

// Get returns a lease visible to the caller. Tenants can only read their
// own leases; managers can only read leases on properties they own.
func (s *LeaseService) Get(ctx context.Context, id, userID int, role string) (*models.Lease, error) {
	lease, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccess(ctx, lease, userID, role); err != nil {
		return nil, err
	}
	return lease, nil
}

// ListForUser returns the tenant's own leases, or for a manager the leases
// across all of their properties.
func (s *LeaseService) ListForUser(ctx context.Context, userID int, role string) ([]*models.Lease, error) {
	if role != models.RoleManager {
		return s.repo.ListByTenant(ctx, userID)
	}

	properties, err := s.propertyRepo.GetByManager(ctx, userID)
	if err != nil {
		return nil, err
	}
	leases := []*models.Lease{}
	for _, p := range properties {
		pl, err := s.repo.ListByProperty(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		leases = append(leases, pl...)
	}
	return leases, nil
}

func (s *LeaseService) ListByProperty(ctx context.Context, propertyID int) ([]*models.Lease, error) {
	return s.repo.ListByProperty(ctx, propertyID)
}

func (s *LeaseService) checkAccess(ctx context.Context, lease *models.Lease, userID int, role string) error {
	if role != models.RoleManager {
		if lease.TenantID != userID {
			return ErrNotOwner
		}
		return nil
	}
	property, err := s.propertyRepo.Get(ctx, lease.PropertyID)
	if err != nil {
		return err
	}
	if property.ManagerID != userID {
		return ErrNotOwner
	}
	return nil
}
