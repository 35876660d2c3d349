// Package theme implements theme authoring: draft creation, listing, partial
// edits and deletion. Every content mutation appends an immutable version
// snapshot in the same transaction, so the version history records each state
// the theme has ever been in.
package theme

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/pkg/ctxutil"
)

type themeRepo interface {
	Create(ctx context.Context, theme *domain.Theme) (*domain.Theme, error)
	GetByID(ctx context.Context, tenantID, themeID uuid.UUID) (*domain.Theme, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ThemeFilter) ([]*domain.Theme, int, error)
	Update(ctx context.Context, tenantID, themeID uuid.UUID, params domain.ThemeUpdateParams) (*domain.Theme, error)
	SetVersion(ctx context.Context, tenantID, themeID uuid.UUID, version int) error
	Delete(ctx context.Context, tenantID, themeID uuid.UUID) error
}

type versionRepo interface {
	Create(ctx context.Context, v *domain.ThemeVersion) (*domain.ThemeVersion, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides theme CRUD operations.
type Service struct {
	themes   themeRepo
	versions versionRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new theme service.
func NewService(log *slog.Logger, themes themeRepo, versions versionRepo, tx txManager) *Service {
	return &Service{
		themes:   themes,
		versions: versions,
		tx:       tx,
		log:      log.With("service", "theme"),
	}
}

// ListResult is a page of themes with the total count before pagination.
type ListResult struct {
	Themes []*domain.Theme
	Total  int
}

// actor is the authenticated caller extracted from the request context.
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

// snapshotOf builds the version snapshot of a theme's current state.
func snapshotOf(th *domain.Theme, createdBy uuid.UUID, changeSummary *string) *domain.ThemeVersion {
	return &domain.ThemeVersion{
		ID:            uuid.New(),
		ThemeID:       th.ID,
		TenantID:      th.TenantID,
		Title:         th.Title,
		Status:        th.Status,
		Difficulty:    th.Difficulty,
		Tags:          th.Tags,
		Content:       th.Content,
		ChangeSummary: changeSummary,
		CreatedBy:     createdBy,
	}
}

// ptr returns a pointer to the given string.
func ptr(s string) *string {
	return &s
}
