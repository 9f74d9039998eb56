package services

import (
	"context"
	"errors"
	"time"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
)

// ErrTenantSuspended refuses wallet mutations for suspended tenants.
var ErrTenantSuspended = errors.New("tenant account is suspended")

type PaymentService struct {
	repo       *repositories.PaymentRepository
	tenantRepo *repositories.TenantRepository
}

func NewPaymentService(repo *repositories.PaymentRepository, tenantRepo *repositories.TenantRepository) *PaymentService {
	return &PaymentService{repo: repo, tenantRepo: tenantRepo}
}

// CreateRentPayment records a one-off rent payment. Status is derived from
// the paid and due amounts.
func (s *PaymentService) CreateRentPayment(ctx context.Context, tenantID int, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if err := s.checkSuspension(ctx, tenantID); err != nil {
		return nil, err
	}

	due := time.Now()
	leaseID := &req.LeaseID
	if req.LeaseID == 0 {
		leaseID = nil
	}
	payment := &models.Payment{
		LeaseID:     leaseID,
		TenantID:    tenantID,
		AmountDue:   req.AmountDue,
		AmountPaid:  req.AmountPaid,
		DueDate:     &due,
		Status:      models.DerivePaymentStatus(req.AmountDue, req.AmountPaid),
		PaymentType: models.PaymentTypeRent,
		IsApproved:  true,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// RequestDeposit records a Pending, unapproved deposit awaiting manager
// review.
func (s *PaymentService) RequestDeposit(ctx context.Context, tenantID int, amount float64) (*models.Payment, error) {
	if err := s.checkSuspension(ctx, tenantID); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		TenantID:    tenantID,
		AmountDue:   amount,
		Status:      models.PaymentStatusPending,
		PaymentType: models.PaymentTypeDeposit,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) ListByTenant(ctx context.Context, tenantID int) ([]*models.Payment, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

func (s *PaymentService) ListByLease(ctx context.Context, leaseID int) ([]*models.Payment, error) {
	return s.repo.ListByLease(ctx, leaseID)
}

func (s *PaymentService) Get(ctx context.Context, id int) (*models.Payment, error) {
	return s.repo.Get(ctx, id)
}

func (s *PaymentService) ListPendingDeposits(ctx context.Context) ([]*models.Payment, error) {
	return s.repo.ListPendingDeposits(ctx)
}

func (s *PaymentService) ApproveDeposit(ctx context.Context, paymentID int) (*models.Payment, error) {
	return s.repo.ApproveDeposit(ctx, paymentID)
}

func (s *PaymentService) DeclineDeposit(ctx context.Context, paymentID int) (*models.Payment, error) {
	return s.repo.DeclineDeposit(ctx, paymentID)
}

func (s *PaymentService) Withdraw(ctx context.Context, tenantID int, req *models.WithdrawRequest) (*models.Payment, error) {
	if err := s.checkSuspension(ctx, tenantID); err != nil {
		return nil, err
	}
	return s.repo.Withdraw(ctx, tenantID, req.Amount, req.Destination)
}

func (s *PaymentService) Fund(ctx context.Context, tenantID int, amount float64) (*models.Payment, error) {
	// Funding is a manager action and works on suspended accounts too
	if _, err := s.tenantRepo.Get(ctx, tenantID); err != nil {
		return nil, err
	}
	return s.repo.Fund(ctx, tenantID, amount)
}

func (s *PaymentService) checkSuspension(ctx context.Context, tenantID int) error {
	tenant, err := s.tenantRepo.Get(ctx, tenantID)
	if err != nil {
		return err
	}
	if tenant.IsSuspended {
		return ErrTenantSuspended
	}
	return nil
}
