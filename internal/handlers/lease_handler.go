package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"estate-backend/internal/middleware"
	"estate-backend/internal/services"
	"estate-backend/pkg/utils"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

type LeaseHandler struct {
	Service   *services.LeaseService
	Payments  *services.PaymentService
	Documents *services.DocumentService
}

func NewLeaseHandler(service *services.LeaseService, payments *services.PaymentService, documents *services.DocumentService) *LeaseHandler {
	return &LeaseHandler{Service: service, Payments: payments, Documents: documents}
}

func (h *LeaseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User not found in context")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	leases, err := h.Service.ListForUser(r.Context(), userID, role)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list leases")
		return
	}
	utils.JSON(w, http.StatusOK, leases)
}

func (h *LeaseHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid lease ID")
		return
	}

	payments, err := h.Payments.ListByLease(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list payments")
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}

// Agreement streams the lease agreement PDF as an attachment.
func (h *LeaseHandler) Agreement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid lease ID")
		return
	}
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User not found in context")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	lease, err := h.Service.Get(r.Context(), id, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			utils.Error(w, http.StatusNotFound, "Lease not found")
		case errors.Is(err, services.ErrNotOwner):
			utils.Error(w, http.StatusForbidden, "Lease belongs to another user")
		default:
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch lease")
		}
		return
	}

	data, err := h.Documents.AgreementPDF(r.Context(), lease)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate agreement")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="agreement-%d.pdf"`, lease.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
