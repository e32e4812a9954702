// Package auth implements registration, login, and token validation.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/streetbite/foodtruck-backend/internal/auth"
	"github.com/streetbite/foodtruck-backend/internal/config"
	"github.com/streetbite/foodtruck-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// jwtManager defines the token management interface needed by the auth service.
type jwtManager interface {
	GenerateToken(userID uuid.UUID) (string, error)
	ValidateToken(token string) (uuid.UUID, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

// ValidateToken verifies an access token and returns the subject user id.
// Any token failure (expired, forged, malformed) maps to domain.ErrUnauthorized:
// authentication failures are a client problem, never a server fault.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return uuid.Nil, fmt.Errorf("expired token: %w", domain.ErrUnauthorized)
		}
		return uuid.Nil, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}
	return userID, nil
}
