// Package auth implements tenant-scoped authentication: email + password
// login within a tenant, issuing JWT access tokens that carry the user id,
// tenant id and role.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/auth"
	"github.com/scolaria/scolaria-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error)
}

// tenantRepo defines the tenant repository interface needed by the auth service.
type tenantRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

// jwtManager defines the JWT token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(identity auth.Identity) (string, error)
}

// Service implements auth operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	tenants tenantRepo
	jwt     jwtManager
}

// NewService creates a new auth service.
func NewService(log *slog.Logger, users userRepo, tenants tenantRepo, jwt jwtManager) *Service {
	return &Service{
		log:     log.With("service", "auth"),
		users:   users,
		tenants: tenants,
		jwt:     jwt,
	}
}

// AuthResult is returned by Login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
