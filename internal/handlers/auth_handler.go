package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"estate-backend/internal/models"
	"estate-backend/internal/services"
	"estate-backend/pkg/utils"

	"github.com/jackc/pgx/v5/pgconn"
)

type AuthHandler struct {
	Service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}
	if req.Role != models.RoleManager && req.Role != models.RoleTenant {
		utils.Error(w, http.StatusBadRequest, "Role must be manager or tenant")
		return
	}

	resp, err := h.Service.Signup(r.Context(), &req)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			utils.Error(w, http.StatusConflict, "Email already registered")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	utils.JSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.Error(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, services.ErrAccountSuspended):
			utils.Error(w, http.StatusForbidden, "Account is suspended")
		default:
			utils.Error(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}
