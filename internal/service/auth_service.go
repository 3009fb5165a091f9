package service

import (
	"log/slog"

	"github.com/evenly-app/evenly/internal/auth"
)

// AuthService exchanges the admin credential for a signed JWT.
type AuthService struct {
	authenticator *auth.AdminAuthenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator *auth.AdminAuthenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login verifies the admin credentials and returns a JWT token.
func (s *AuthService) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", auth.ErrInvalidCredentials
	}

	if err := s.authenticator.Authenticate(email, password); err != nil {
		s.logger.Warn("Login failed", "email", email)
		return "", err
	}

	token, err := s.jwtManager.Generate(email)
	if err != nil {
		s.logger.Error("Failed to generate token", "email", email, "error", err)
		return "", err
	}

	s.logger.Info("Admin logged in", "email", email)
	return token, nil
}
