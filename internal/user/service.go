package user

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Service manages the user directory consumed by the wallet core.
type Service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new user with a unique name.
func (s *Service) Create(ctx context.Context, name string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, ErrNameRequired
	}

	user := User{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	return s.repo.Insert(ctx, user)
}

// GetByID fetches a user by identifier.
func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByName fetches a user by name.
func (s *Service) GetByName(ctx context.Context, name string) (User, error) {
	return s.repo.FindByName(ctx, name)
}

// GetIDByName resolves a user identifier from a name.
func (s *Service) GetIDByName(ctx context.Context, name string) (int64, error) {
	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Exists reports whether a user id resolves to a registered user.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
