package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"araucarias-admin-service/internal/auth"
	"araucarias-admin-service/internal/store"
	"araucarias-admin-service/pkg/response"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required")
		return
	}

	user, err := h.Store.AdminUserByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		response.Error(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}
	if err != nil {
		h.Logger.Error("login lookup failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		response.Error(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	role := auth.UserRole(strings.ToUpper(user.Role))
	token, err := auth.NewAccessToken(user.ID, role, user.Email, user.Name,
		h.Config.JWTSecret, time.Duration(h.Config.JWTExpirySeconds)*time.Second)
	if err != nil {
		h.Logger.Error("token issue failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	response.Success(w, map[string]any{
		"token": token,
		"user": map[string]any{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  role,
		},
	})
}
