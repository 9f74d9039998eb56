package services

import (
	"context"
	"errors"
	"fmt"

	"estate-backend/internal/auth"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
)

var (
	// ErrInvalidCredentials covers unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountSuspended refuses login for suspended tenants.
	ErrAccountSuspended = errors.New("account suspended")
)

type AuthService struct {
	managerRepo *repositories.ManagerRepository
	tenantRepo  *repositories.TenantRepository
	jwtManager  *auth.JWTManager
}

func NewAuthService(managerRepo *repositories.ManagerRepository, tenantRepo *repositories.TenantRepository, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		managerRepo: managerRepo,
		tenantRepo:  tenantRepo,
		jwtManager:  jwtManager,
	}
}

func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	switch req.Role {
	case models.RoleManager:
		manager := &models.Manager{
			Name:        req.Name,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
		}
		if err := s.managerRepo.Create(ctx, manager, hash); err != nil {
			return nil, err
		}
		return s.respond(manager.ID, manager.Name, manager.Email, models.RoleManager)
	case models.RoleTenant:
		tenant := &models.Tenant{
			Name:        req.Name,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
		}
		if err := s.tenantRepo.Create(ctx, tenant, hash); err != nil {
			return nil, err
		}
		return s.respond(tenant.ID, tenant.Name, tenant.Email, models.RoleTenant)
	default:
		return nil, fmt.Errorf("unknown role %q", req.Role)
	}
}

func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	switch req.Role {
	case models.RoleManager:
		manager, hash, err := s.managerRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, ErrInvalidCredentials
		}
		if !auth.VerifyPassword(hash, req.Password) {
			return nil, ErrInvalidCredentials
		}
		return s.respond(manager.ID, manager.Name, manager.Email, models.RoleManager)
	case models.RoleTenant:
		tenant, hash, err := s.tenantRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, ErrInvalidCredentials
		}
		if !auth.VerifyPassword(hash, req.Password) {
			return nil, ErrInvalidCredentials
		}
		if tenant.IsSuspended {
			return nil, ErrAccountSuspended
		}
		return s.respond(tenant.ID, tenant.Name, tenant.Email, models.RoleTenant)
	default:
		return nil, fmt.Errorf("unknown role %q", req.Role)
	}
}

func (s *AuthService) respond(id int, name, email, role string) (*models.AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(id, email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &models.AuthResponse{
		Token: token,
		ID:    id,
		Name:  name,
		Email: email,
		Role:  role,
	}, nil
}
