package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTRoundtrip(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)

	token, err := manager.Generate("admin@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("email = %s", claims.Email)
	}
	if !claims.Admin {
		t.Error("expected admin claim")
	}
}

func TestJWTRejectsBadTokens(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)

	if _, err := manager.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}

	// Token signed with a different secret must not validate.
	other := NewJWTManager("a-completely-different-secret!!!", time.Hour)
	token, err := other.Generate("admin@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestAdminAuthenticator(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	authenticator := NewAdminAuthenticator("admin@example.com", hash)

	if err := authenticator.Authenticate("admin@example.com", "correct horse battery staple"); err != nil {
		t.Errorf("valid credentials rejected: %v", err)
	}
	if err := authenticator.Authenticate("admin@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
	if err := authenticator.Authenticate("intruder@example.com", "correct horse battery staple"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}
