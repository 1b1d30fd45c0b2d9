package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"collections-backend/internal/auth"
	"collections-backend/internal/middleware"
	"collections-backend/internal/models"
	"collections-backend/internal/services"
	"collections-backend/internal/session"
	"collections-backend/pkg/utils"

	"github.com/google/uuid"
)

type AuthHandler struct {
	Service    *services.AuthService
	Sessions   *session.Store
	JWTManager *auth.JWTManager
}

func NewAuthHandler(s *services.AuthService, sessions *session.Store, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		Service:    s,
		Sessions:   sessions,
		JWTManager: jwtManager,
	}
}

// Login authenticates an administrator and opens a session in the slot
// selected by the remember flag.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := h.Service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			utils.Error(w, http.StatusUnauthorized, "Username not found.")
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.Error(w, http.StatusUnauthorized, "Incorrect password.")
		default:
			writeServiceError(w, err)
		}
		return
	}

	sessionID := uuid.NewString()
	if err := h.Sessions.Save(r.Context(), sessionID, admin, req.Remember); err != nil {
		log.Printf("[Session] save failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	token, err := h.JWTManager.GenerateToken(admin, sessionID)
	if err != nil {
		log.Printf("[Auth] token generation failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	utils.JSON(w, http.StatusOK, models.AuthResponse{Token: token, Admin: admin})
}

// Logout clears the session from both storage slots.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	if err := h.Sessions.Clear(r.Context(), sessionID); err != nil {
		log.Printf("[Session] clear failed: %v", err)
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Session returns the administrator behind the presented token. The UI
// calls this once at startup to restore a persisted login.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetAdminFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	utils.JSON(w, http.StatusOK, admin)
}
