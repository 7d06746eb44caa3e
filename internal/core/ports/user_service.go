package ports

import (
	"context"

	"github.com/itam-platform/identity-service/internal/core/domain"
)

// UserService covers identity lifecycle operations after registration.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, name, email string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
