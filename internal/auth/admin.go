// Package auth implements the admin capability gate: a single configured
// admin credential checked with bcrypt, exchanged for a signed JWT. Group
// members themselves have no accounts; user-facing authentication policy
// lives outside this system.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AdminAuthenticator verifies the configured admin credential.
type AdminAuthenticator struct {
	email        string
	passwordHash []byte
}

// NewAdminAuthenticator creates an authenticator for the given admin email
// and bcrypt password hash (as produced by HashPassword).
func NewAdminAuthenticator(email, passwordHash string) *AdminAuthenticator {
	return &AdminAuthenticator{
		email:        email,
		passwordHash: []byte(passwordHash),
	}
}

// Authenticate verifies the email and password against the configured
// admin credential.
func (a *AdminAuthenticator) Authenticate(email, password string) error {
	if email != a.email {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword produces a bcrypt hash suitable for the ADMIN_PASSWORD_HASH
// configuration value.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
