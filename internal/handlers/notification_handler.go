package handlers

import (
	"encoding/json"
	"net/http"

	"estate-backend/internal/middleware"
	"estate-backend/internal/models"
	"estate-backend/internal/services"
	"estate-backend/pkg/utils"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// SendToUser emails a single tenant address.
func (h *NotificationHandler) SendToUser(w http.ResponseWriter, r *http.Request) {
	var req models.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Subject == "" {
		utils.Error(w, http.StatusBadRequest, "Email and subject are required")
		return
	}

	if err := h.Service.SendToTenant(r.Context(), &req); err != nil {
		utils.Error(w, http.StatusBadGateway, "Failed to send email")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Email sent"})
}

// Broadcast emails every active tenant.
func (h *NotificationHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req models.BroadcastEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Subject == "" {
		utils.Error(w, http.StatusBadRequest, "Subject is required")
		return
	}

	sent, failed, err := h.Service.Broadcast(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, "Failed to send broadcast")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]int{"sent": sent, "failed": failed})
}

func (h *NotificationHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	h.listFeed(w, r, models.NotificationKindMessage)
}

func (h *NotificationHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	h.listFeed(w, r, models.NotificationKindAlert)
}

func (h *NotificationHandler) listFeed(w http.ResponseWriter, r *http.Request, kind string) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User not found in context")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	notifications, err := h.Service.Feed(r.Context(), userID, role, kind)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list notifications")
		return
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}
	utils.JSON(w, http.StatusOK, notifications)
}
