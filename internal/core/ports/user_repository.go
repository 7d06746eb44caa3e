package ports

import (
	"context"

	"github.com/itam-platform/identity-service/internal/core/domain"
)

// UserRepository defines the persistence interface for identities.
//
// Create must rely on the store's unique email constraint and return
// domain.ErrUserExists on a duplicate; two concurrent registrations with the
// same email are resolved by the store rejecting the second insert, never by
// an application-level existence check.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
