package handlers

import (
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

type ManagerHandler struct {
	Service    *services.ManagerService
	Properties *services.PropertyService
}

func NewManagerHandler(service *services.ManagerService, properties *services.PropertyService) *ManagerHandler {
	return &ManagerHandler{Service: service, Properties: properties}
}

func (h *ManagerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid manager ID")
		return
	}

	manager, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Manager not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch manager")
		return
	}
	utils.JSON(w, http.StatusOK, manager)
}

func (h *ManagerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid manager ID")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	if userID != id {
		utils.Error(w, http.StatusForbidden, "Cannot update another manager's profile")
		return
	}

	var req models.UpdateManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	manager, err := h.Service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Manager not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to update manager")
		return
	}
	utils.JSON(w, http.StatusOK, manager)
}

func (h *ManagerHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid manager ID")
		return
	}

	properties, err := h.Properties.GetByManager(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list properties")
		return
	}
	utils.JSON(w, http.StatusOK, properties)
}
