// Package version implements the theme version store: immutable snapshots
// with strictly increasing per-theme version numbers, restore-as-new-version,
// newest-first history and shallow structural comparison.
package version

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/pkg/ctxutil"
)

type versionRepo interface {
	Create(ctx context.Context, v *domain.ThemeVersion) (*domain.ThemeVersion, error)
	GetByID(ctx context.Context, tenantID, versionID uuid.UUID) (*domain.ThemeVersion, error)
	List(ctx context.Context, tenantID, themeID uuid.UUID, limit int, milestonesOnly bool) ([]*domain.ThemeVersion, error)
}

type themeRepo interface {
	GetByID(ctx context.Context, tenantID, themeID uuid.UUID) (*domain.Theme, error)
	Update(ctx context.Context, tenantID, themeID uuid.UUID, params domain.ThemeUpdateParams) (*domain.Theme, error)
	SetVersion(ctx context.Context, tenantID, themeID uuid.UUID, version int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides theme version operations.
type Service struct {
	versions versionRepo
	themes   themeRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new version service.
func NewService(log *slog.Logger, versions versionRepo, themes themeRepo, tx txManager) *Service {
	return &Service{
		versions: versions,
		themes:   themes,
		tx:       tx,
		log:      log.With("service", "version"),
	}
}

type actor struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Role     domain.UserRole
}

func actorFromCtx(ctx context.Context) (actor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return actor{}, domain.ErrUnauthorized
	}
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return actor{}, domain.ErrUnauthorized
	}
	roleStr, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return actor{}, domain.ErrUnauthorized
	}
	role := domain.UserRole(roleStr)
	if !role.IsValid() {
		return actor{}, domain.ErrUnauthorized
	}
	return actor{UserID: userID, TenantID: tenantID, Role: role}, nil
}

// ptr returns a pointer to the given string.
func ptr(s string) *string {
	return &s
}
