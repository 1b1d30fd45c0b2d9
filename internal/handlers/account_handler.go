package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"collections-backend/internal/middleware"
	"collections-backend/internal/models"
	"collections-backend/internal/services"
	"collections-backend/internal/session"
	"collections-backend/pkg/utils"
)

type AccountHandler struct {
	Service  *services.AuthService
	Sessions *session.Store
}

func NewAccountHandler(s *services.AuthService, sessions *session.Store) *AccountHandler {
	return &AccountHandler{Service: s, Sessions: sessions}
}

// Update applies a partial credential change for the logged-in
// administrator and refreshes the live session copy so the new
// username is visible without re-login.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetAdminFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var update models.AdminUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.Service.UpdateCredentials(r.Context(), admin, update)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if sessionID, ok := middleware.GetSessionIDFromContext(r.Context()); ok {
		if err := h.Sessions.Refresh(r.Context(), sessionID, updated); err != nil {
			log.Printf("[Session] refresh failed: %v", err)
		}
	}

	utils.JSON(w, http.StatusOK, updated)
}
