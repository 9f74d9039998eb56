package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"estate-backend/internal/middleware"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/services"
	"estate-backend/pkg/utils"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

type PaymentHandler struct {
	Service   *services.PaymentService
	Documents *services.DocumentService
}

func NewPaymentHandler(service *services.PaymentService, documents *services.DocumentService) *PaymentHandler {
	return &PaymentHandler{Service: service, Documents: documents}
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AmountDue <= 0 || req.AmountPaid < 0 {
		utils.Error(w, http.StatusBadRequest, "Amounts must be positive")
		return
	}

	payment, err := h.Service.CreateRentPayment(r.Context(), tenantID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTenantSuspended) {
			utils.Error(w, http.StatusForbidden, "Account is suspended")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to record payment")
		return
	}
	utils.JSON(w, http.StatusCreated, payment)
}

// ListByTenant returns a tenant's payment history. Tenants may only read
// their own.
func (h *PaymentHandler) ListByTenant(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid tenant ID")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())
	if role != models.RoleManager && userID != tenantID {
		utils.Error(w, http.StatusForbidden, "Cannot read another tenant's payments")
		return
	}

	payments, err := h.Service.ListByTenant(r.Context(), tenantID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list payments")
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}

// Receipt streams the payment receipt PDF as an attachment.
func (h *PaymentHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	payment, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Payment not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch payment")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())
	if role != models.RoleManager && payment.TenantID != userID {
		utils.Error(w, http.StatusForbidden, "Receipt belongs to another tenant")
		return
	}

	data, err := h.Documents.ReceiptPDF(r.Context(), payment)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-%d.pdf"`, payment.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *PaymentHandler) RequestDeposit(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req models.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount <= 0 {
		utils.Error(w, http.StatusBadRequest, "Amount must be positive")
		return
	}

	payment, err := h.Service.RequestDeposit(r.Context(), tenantID, req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrTenantSuspended) {
			utils.Error(w, http.StatusForbidden, "Account is suspended")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to request deposit")
		return
	}
	utils.JSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) ListPendingDeposits(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.Service.ListPendingDeposits(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list pending deposits")
		return
	}
	utils.JSON(w, http.StatusOK, deposits)
}

func (h *PaymentHandler) ApproveDeposit(w http.ResponseWriter, r *http.Request) {
	h.reviewDeposit(w, r, h.Service.ApproveDeposit)
}

func (h *PaymentHandler) DeclineDeposit(w http.ResponseWriter, r *http.Request) {
	h.reviewDeposit(w, r, h.Service.DeclineDeposit)
}

func (h *PaymentHandler) reviewDeposit(w http.ResponseWriter, r *http.Request, review func(ctx context.Context, id int) (*models.Payment, error)) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid deposit ID")
		return
	}

	payment, err := review(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			utils.Error(w, http.StatusNotFound, "Deposit not found")
		case errors.Is(err, repositories.ErrDepositNotPending):
			utils.Error(w, http.StatusConflict, "Deposit is not pending approval")
		default:
			utils.Error(w, http.StatusInternalServerError, "Failed to review deposit")
		}
		return
	}
	utils.JSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req models.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount <= 0 {
		utils.Error(w, http.StatusBadRequest, "Amount must be positive")
		return
	}
	if req.Destination == "" {
		utils.Error(w, http.StatusBadRequest, "Destination is required")
		return
	}

	payment, err := h.Service.Withdraw(r.Context(), tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTenantSuspended):
			utils.Error(w, http.StatusForbidden, "Account is suspended")
		case errors.Is(err, repositories.ErrInsufficientBalance):
			utils.Error(w, http.StatusUnprocessableEntity, "Balance cannot cover the withdrawal")
		default:
			utils.Error(w, http.StatusInternalServerError, "Failed to withdraw")
		}
		return
	}
	utils.JSON(w, http.StatusCreated, payment)
}

// Fund credits a tenant's balance with a pre-approved deposit record.
func (h *PaymentHandler) Fund(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid tenant ID")
		return
	}

	var req models.FundTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount <= 0 {
		utils.Error(w, http.StatusBadRequest, "Amount must be positive")
		return
	}

	payment, err := h.Service.Fund(r.Context(), tenantID, req.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Tenant not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to fund tenant")
		return
	}
	utils.JSON(w, http.StatusCreated, payment)
}
