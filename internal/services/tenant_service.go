package services

import (
	"context"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
)

type TenantService struct {
	repo         *repositories.TenantRepository
	propertyRepo *repositories.PropertyRepository
}

func NewTenantService(repo *repositories.TenantRepository, propertyRepo *repositories.PropertyRepository) *TenantService {
	return &TenantService{repo: repo, propertyRepo: propertyRepo}
}

func (s *TenantService) Get(ctx context.Context, id int) (*models.Tenant, error) {
	return s.repo.Get(ctx, id)
}

func (s *TenantService) Update(ctx context.Context, id int, req *models.UpdateTenantRequest) (*models.Tenant, error) {
	return s.repo.Update(ctx, id, req)
}

// AddFavorite bookmarks a property for the tenant. The property must exist.
func (s *TenantService) AddFavorite(ctx context.Context, tenantID, propertyID int) error {
	if _, err := s.propertyRepo.Get(ctx, propertyID); err != nil {
		return err
	}
	return s.repo.AddFavorite(ctx, tenantID, propertyID)
}

func (s *TenantService) RemoveFavorite(ctx context.Context, tenantID, propertyID int) error {
	return s.repo.RemoveFavorite(ctx, tenantID, propertyID)
}

func (s *TenantService) ListFavorites(ctx context.Context, tenantID int) ([]*models.Property, error) {
	return s.repo.ListFavorites(ctx, tenantID)
}

func (s *TenantService) ListResidences(ctx context.Context, tenantID int) ([]*models.Property, error) {
	return s.repo.ListResidences(ctx, tenantID)
}
