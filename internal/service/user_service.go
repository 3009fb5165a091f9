package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evenly-app/evenly/internal/models"
	"github.com/evenly-app/evenly/internal/storage"
)

// UserService manages group members.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// Create registers a new user with the given display name.
func (s *UserService) Create(ctx context.Context, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: user name required", ErrInvalidInput)
	}

	user := &models.User{Name: name}
	if err := s.store.CreateUser(ctx, user); err != nil {
		slog.Error("CreateUser failed", "error", err)
		return nil, err
	}

	slog.Info("User created", "user_id", user.ID, "name", user.Name)
	return user, nil
}

// List returns all registered users.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.store.ListUsers(ctx)
}

// Delete removes a user, provided no expense, split, or payment references
// them. Financial records are never cascade-deleted for a user.
func (s *UserService) Delete(ctx context.Context, id string) error {
	involved, err := s.store.UserInvolved(ctx, id)
	if err != nil {
		return err
	}
	if involved {
		return fmt.Errorf("cannot delete user %s: %w", id, ErrUserInvolved)
	}

	if err := s.store.DeleteUser(ctx, id); err != nil {
		return err
	}

	slog.Info("User deleted", "user_id", id)
	return nil
}
