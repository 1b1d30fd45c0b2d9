package middleware

import (
	"context"
	"net/http"
	"strings"

	"collections-backend/internal/auth"
	"collections-backend/internal/models"
	"collections-backend/internal/session"
)

type contextKey string

const AdminKey contextKey = "admin"
const SessionIDKey contextKey = "session_id"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	sessions   *session.Store
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, sessions *session.Store) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		sessions:   sessions,
	}
}

// Authenticate validates the bearer token and restores the session
// copy of the administrator. A token whose session has been cleared
// (logout, restart of a non-remembered session) is rejected.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid authorization format", http.StatusUnauthorized)
			return
		}

		claims, err := m.jwtManager.ValidateToken(parts[1])
		if err != nil {
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		admin, ok, err := m.sessions.Load(r.Context(), claims.SessionID)
		if err != nil {
			http.Error(w, "Session lookup failed", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "Session expired, please log in again", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), AdminKey, admin)
		ctx = context.WithValue(ctx, SessionIDKey, claims.SessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminFromContext extracts the session administrator from the request context
func GetAdminFromContext(ctx context.Context) (*models.Administrator, bool) {
	admin, ok := ctx.Value(AdminKey).(*models.Administrator)
	return admin, ok
}

// GetSessionIDFromContext extracts the session id from the request context
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDKey).(string)
	return id, ok
}
