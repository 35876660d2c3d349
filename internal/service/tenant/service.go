// Package tenant implements tenant onboarding and lookup. Onboarding creates
// the tenant and its first direction-role user atomically, so a tenant can
// never exist without an account able to administer it.
package tenant

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// tenantRepo defines the tenant repository interface needed by this service.
type tenantRepo interface {
	Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, tenantID uuid.UUID) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

// userRepo defines the user repository interface needed by this service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements tenant operations.
type Service struct {
	tenants tenantRepo
	users   userRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new tenant service.
func NewService(log *slog.Logger, tenants tenantRepo, users userRepo, tx txManager) *Service {
	return &Service{
		tenants: tenants,
		users:   users,
		tx:      tx,
		log:     log.With("service", "tenant"),
	}
}

// OnboardResult is returned by Onboard.
type OnboardResult struct {
	Tenant *domain.Tenant
	Admin  *domain.User
}
