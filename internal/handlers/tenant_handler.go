package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"estate-backend/internal/middleware"
	"estate-backend/internal/models"
	"estate-backend/internal/services"
	"estate-backend/pkg/utils"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

type TenantHandler struct {
	Service *services.TenantService
}

func NewTenantHandler(service *services.TenantService) *TenantHandler {
	return &TenantHandler{Service: service}
}

func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid tenant ID")
		return
	}
	if !h.canAccess(r, id) {
		utils.Error(w, http.StatusForbidden, "Cannot read another tenant's profile")
		return
	}

	tenant, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Tenant not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch tenant")
		return
	}
	utils.JSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid tenant ID")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	if userID != id {
		utils.Error(w, http.StatusForbidden, "Cannot update another tenant's profile")
		return
	}

	var req models.UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tenant, err := h.Service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Tenant not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to update tenant")
		return
	}
	utils.JSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	tenantID, propertyID, ok := h.favoriteIDs(w, r)
	if !ok {
		return
	}

	if err := h.Service.AddFavorite(r.Context(), tenantID, propertyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Property not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]string{"message": "Favorite added"})
}

func (h *TenantHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	tenantID, propertyID, ok := h.favoriteIDs(w, r)
	if !ok {
		return
	}

	if err := h.Service.RemoveFavorite(r.Context(), tenantID, propertyID); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Favorite removed"})
}

func (h *TenantHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	h.listProperties(w, r, h.Service.ListFavorites)
}

func (h *TenantHandler) ListResidences(w http.ResponseWriter, r *http.Request) {
	h.listProperties(w, r, h.Service.ListResidences)
}

func (h *TenantHandler) listProperties(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, tenantID int) ([]*models.Property, error)) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid tenant ID")
		return
	}
	if !h.canAccess(r, id) {
		utils.Error(w, http.StatusForbidden, "Cannot read another tenant's data")
		return
	}

	properties, err := list(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list properties")
		return
	}
	utils.JSON(w, http.StatusOK, properties)
}

func (h *TenantHandler) favoriteIDs(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	vars := mux.Vars(r)
	tenantID, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid tenant ID")
		return 0, 0, false
	}
	propertyID, err := strconv.Atoi(vars["propertyId"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid property ID")
		return 0, 0, false
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	if userID != tenantID {
		utils.Error(w, http.StatusForbidden, "Cannot modify another tenant's favorites")
		return 0, 0, false
	}
	return tenantID, propertyID, true
}

// canAccess allows managers, and tenants acting on their own record.
func (h *TenantHandler) canAccess(r *http.Request, tenantID int) bool {
	role, _ := middleware.GetRoleFromContext(r.Context())
	if role == models.RoleManager {
		return true
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	return userID == tenantID
}
