package service

import (
	"context"
	"time"

	"github.com/itam-platform/identity-service/internal/core/domain"
	"github.com/itam-platform/identity-service/internal/core/ports"
)

// UserService covers the identity lifecycle after registration: listing,
// lookup, profile updates and the explicit admin-triggered delete.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile changes name and/or email. Empty fields keep their previous
// values. The password hash is untouched here; credentials only change through
// the auth flow.
func (s *UserService) UpdateProfile(ctx context.Context, id, name, email string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	user.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
