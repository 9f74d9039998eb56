package services

import (
	"context"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
)

type ManagerService struct {
	repo *repositories.ManagerRepository
}

func NewManagerService(repo *repositories.ManagerRepository) *ManagerService {
	return &ManagerService{repo: repo}
}

func (s *ManagerService) Get(ctx context.Context, id int) (*models.Manager, error) {
	return s.repo.Get(ctx, id)
}

func (s *ManagerService) Update(ctx context.Context, id int, req *models.UpdateManagerRequest) (*models.Manager, error) {
	return s.repo.Update(ctx, id, req)
}
