package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/itam-platform/identity-service/internal/core/domain"
	"github.com/itam-platform/identity-service/internal/core/ports"
)

// AuthService implements registration and login over a UserRepository.
//
// bcrypt carries its own per-record random salt and a tunable work factor, so
// stored hashes are the only durable credential material and guessing is
// deliberately slow.
type AuthService struct {
	repo   ports.UserRepository
	issuer ports.TokenIssuer
	cost   int
}

func NewAuthService(repo ports.UserRepository, issuer ports.TokenIssuer, cost int) *AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, issuer: issuer, cost: cost}
}

// Register persists a new identity at the lowest-privilege tier and returns a
// freshly issued token alongside it. Duplicate emails surface as
// domain.ErrUserExists from the repository's unique index.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleEmployee,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issuer.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// both return domain.ErrInvalidCredentials so responses cannot be used to
// probe which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
