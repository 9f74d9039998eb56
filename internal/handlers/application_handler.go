package handlers

import (
	"encoding/json"
	"errors"
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

type ApplicationHandler struct {
	Service *services.ApplicationService
}

func NewApplicationHandler(service *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Service: service}
}

func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req models.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PropertyID == 0 || req.ApplicantName == "" || req.ApplicantEmail == "" {
		utils.Error(w, http.StatusBadRequest, "Property, applicant name and email are required")
		return
	}

	app, err := h.Service.Create(r.Context(), tenantID, &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Property not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to submit application")
		return
	}
	utils.JSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User not found in context")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	apps, err := h.Service.ListForUser(r.Context(), userID, role)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}
	utils.JSON(w, http.StatusOK, apps)
}

// UpdateStatus transitions an application. Approval runs the full lease
// creation workflow and returns the lease and opening payment with it.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid application ID")
		return
	}
	managerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req models.UpdateApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !models.ValidApplicationStatus(req.Status) {
		utils.Error(w, http.StatusBadRequest, "Status must be Pending, Denied or Approved")
		return
	}

	result, err := h.Service.UpdateStatus(r.Context(), id, managerID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			utils.Error(w, http.StatusNotFound, "Application not found")
		case errors.Is(err, services.ErrNotOwner):
			utils.Error(w, http.StatusForbidden, "Application is for another manager's property")
		case errors.Is(err, repositories.ErrAlreadyApproved):
			utils.Error(w, http.StatusConflict, "Application is already approved")
		case errors.Is(err, repositories.ErrInsufficientBalance):
			utils.Error(w, http.StatusUnprocessableEntity, "Tenant balance cannot cover the first payment")
		default:
			utils.Error(w, http.StatusInternalServerError, "Failed to update application")
		}
		return
	}
	utils.JSON(w, http.StatusOK, result)
}
