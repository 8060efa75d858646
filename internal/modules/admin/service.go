package admin

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"barbershop/internal/domain"
	jwtsvc "barbershop/internal/pkg/jwt"
	"barbershop/internal/repository"
)

// AccountRepository loads admin accounts.
type AccountRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
}

type Service struct {
	accounts AccountRepository
	jwt      *jwtsvc.Service
	// enabled mirrors the admin-accounts capability flag: deployments
	// migrated without the table get a disabled console, not errors.
	enabled bool
}

func NewService(accounts AccountRepository, jwt *jwtsvc.Service, enabled bool) *Service {
	return &Service{accounts: accounts, jwt: jwt, enabled: enabled}
}

// Login checks the password and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if !s.enabled {
		return "", ErrUnavailable
	}

	u, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(u.ID, u.Username)
}
