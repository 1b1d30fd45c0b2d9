package auth

import (
	"testing"

	"collections-backend/internal/config"
	"collections-backend/internal/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "collections-backend"
	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig())
	admin := &models.Administrator{ID: 7, Username: "jo"}

	token, err := m.GenerateToken(admin, "session-abc")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.SessionID != "session-abc" || claims.AdminID != 7 || claims.Username != "jo" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager(testConfig())
	token, err := m.GenerateToken(&models.Administrator{ID: 1}, "sid")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := testConfig()
	other.JWT.Secret = "different"
	if _, err := NewJWTManager(other).ValidateToken(token); err == nil {
		t.Fatal("token accepted under a different secret")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewJWTManager(testConfig())
	if _, err := m.ValidateToken("not.a.token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals the input")
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestVerifyLegacyPlaintext(t *testing.T) {
	if !VerifyPassword("plainpass", "plainpass") {
		t.Error("legacy plaintext secret rejected")
	}
	if VerifyPassword("plainpass", "other") {
		t.Error("mismatched plaintext accepted")
	}
}
