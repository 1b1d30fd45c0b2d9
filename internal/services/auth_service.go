package services

import (
	"context"
	"fmt"
	"strings"

	"collections-backend/internal/auth"
	"collections-backend/internal/models"
)

// AdminStore is the identity-store surface the authenticator needs.
type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Administrator, error)
	UpdateCredentials(ctx context.Context, id int, update models.AdminUpdate) error
}

type AuthService struct {
	Store AdminStore
}

func NewAuthService(store AdminStore) *AuthService {
	return &AuthService{Store: store}
}

// NormalizeUsername trims the submitted username and strips all
// interior whitespace, matching how usernames are stored.
func NormalizeUsername(raw string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(raw)), "")
}

// Authenticate validates credentials against the identity store. On
// success the returned administrator carries id, name and username
// only; the stored secret is discarded.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.Administrator, error) {
	normalized := NormalizeUsername(username)
	if normalized == "" || password == "" {
		return nil, &ValidationError{Msg: "username and password are required"}
	}

	admin, err := s.Store.GetByUsername(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("admin lookup: %w", err)
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}

	if !auth.VerifyPassword(admin.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return &models.Administrator{
		ID:       admin.ID,
		Name:     admin.Name,
		Username: admin.Username,
	}, nil
}

// UpdateCredentials applies a partial credential change for the logged
// in administrator and returns the refreshed session copy. New
// passwords are always stored bcrypt-hashed.
func (s *AuthService) UpdateCredentials(ctx context.Context, admin *models.Administrator, update models.AdminUpdate) (*models.Administrator, error) {
	if update.Username != nil {
		normalized := NormalizeUsername(*update.Username)
		if normalized == "" {
			return nil, &ValidationError{Msg: "username must not be empty"}
		}
		update.Username = &normalized
	}
	if update.Password != nil {
		if strings.TrimSpace(*update.Password) == "" {
			return nil, &ValidationError{Msg: "password must not be empty"}
		}
		hashed, err := auth.HashPassword(*update.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		update.Password = &hashed
	}
	if update.IsEmpty() {
		return nil, &ValidationError{Msg: "nothing to update"}
	}

	if err := s.Store.UpdateCredentials(ctx, admin.ID, update); err != nil {
		return nil, fmt.Errorf("update credentials: %w", err)
	}

	updated := *admin
	if update.Username != nil {
		updated.Username = *update.Username
	}
	return &updated, nil
}
