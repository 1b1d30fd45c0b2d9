package services

import (
	"context"
	"errors"
	"testing"

	"collections-backend/internal/auth"
	"collections-backend/internal/models"
)

type fakeAdminStore struct {
	admins  map[string]*models.Administrator
	updates []models.AdminUpdate
	err     error
}

func (f *fakeAdminStore) GetByUsername(ctx context.Context, username string) (*models.Administrator, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.admins[username], nil
}

func (f *fakeAdminStore) UpdateCredentials(ctx context.Context, id int, update models.AdminUpdate) error {
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, update)
	return nil
}

func storeWith(t *testing.T, username, password string) *fakeAdminStore {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &fakeAdminStore{admins: map[string]*models.Administrator{
		username: {ID: 7, Name: "Jo Admin", Username: username, Password: hashed},
	}}
}

func TestNormalizeUsername(t *testing.T) {
	cases := map[string]string{
		"  my user  ": "myuser",
		"plain":       "plain",
		"a b\tc":      "abc",
		"   ":         "",
	}
	for in, want := range cases {
		if got := NormalizeUsername(in); got != want {
			t.Errorf("NormalizeUsername(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	svc := NewAuthService(storeWith(t, "myuser", "s3cret"))

	// The submitted username normalizes to the stored form.
	admin, err := svc.Authenticate(context.Background(), "  my user ", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if admin.ID != 7 || admin.Username != "myuser" {
		t.Errorf("admin = %+v", admin)
	}
	if admin.Password != "" {
		t.Errorf("stored secret leaked into the session copy")
	}
}

func TestAuthenticateUnknownUsername(t *testing.T) {
	svc := NewAuthService(storeWith(t, "myuser", "s3cret"))

	_, err := svc.Authenticate(context.Background(), "nobody", "s3cret")
	if !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("got %v, want ErrAdminNotFound", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := NewAuthService(storeWith(t, "myuser", "s3cret"))

	_, err := svc.Authenticate(context.Background(), "myuser", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateLegacyPlaintextSecret(t *testing.T) {
	store := &fakeAdminStore{admins: map[string]*models.Administrator{
		"legacy": {ID: 2, Username: "legacy", Password: "plainpass"},
	}}
	svc := NewAuthService(store)

	if _, err := svc.Authenticate(context.Background(), "legacy", "plainpass"); err != nil {
		t.Fatalf("legacy secret rejected: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "legacy", "other"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateEmptyInput(t *testing.T) {
	svc := NewAuthService(storeWith(t, "myuser", "s3cret"))

	var vErr *ValidationError
	if _, err := svc.Authenticate(context.Background(), "   ", "s3cret"); !errors.As(err, &vErr) {
		t.Fatalf("blank username: got %v, want ValidationError", err)
	}
	if _, err := svc.Authenticate(context.Background(), "myuser", ""); !errors.As(err, &vErr) {
		t.Fatalf("blank password: got %v, want ValidationError", err)
	}
}

func TestUpdateCredentialsHashesNewPassword(t *testing.T) {
	store := storeWith(t, "myuser", "s3cret")
	svc := NewAuthService(store)
	admin := &models.Administrator{ID: 7, Name: "Jo Admin", Username: "myuser"}

	pw := "newpass"
	if _, err := svc.UpdateCredentials(context.Background(), admin, models.AdminUpdate{Password: &pw}); err != nil {
		t.Fatalf("UpdateCredentials: %v", err)
	}

	if len(store.updates) != 1 || store.updates[0].Password == nil {
		t.Fatalf("no password update recorded")
	}
	stored := *store.updates[0].Password
	if stored == "newpass" {
		t.Fatal("password stored in cleartext")
	}
	if !auth.VerifyPassword(stored, "newpass") {
		t.Fatal("stored hash does not verify against the new password")
	}
}

func TestUpdateCredentialsNormalizesUsername(t *testing.T) {
	store := storeWith(t, "myuser", "s3cret")
	svc := NewAuthService(store)
	admin := &models.Administrator{ID: 7, Username: "myuser"}

	name := "  new name  "
	updated, err := svc.UpdateCredentials(context.Background(), admin, models.AdminUpdate{Username: &name})
	if err != nil {
		t.Fatalf("UpdateCredentials: %v", err)
	}
	if updated.Username != "newname" {
		t.Errorf("updated username = %q, want newname", updated.Username)
	}
	if got := *store.updates[0].Username; got != "newname" {
		t.Errorf("stored username = %q, want newname", got)
	}
}

func TestUpdateCredentialsRejectsEmptyUpdate(t *testing.T) {
	svc := NewAuthService(storeWith(t, "myuser", "s3cret"))
	admin := &models.Administrator{ID: 7, Username: "myuser"}

	var vErr *ValidationError
	if _, err := svc.UpdateCredentials(context.Background(), admin, models.AdminUpdate{}); !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}
