// Package annotation implements review annotations: comments and suggestions
// anchored to a JSON path within a theme version. Open error/warning
// annotations act as the approval gate consulted by the workflow engine.
package annotation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/pkg/ctxutil"
)

type annotationRepo interface {
	Create(ctx context.Context, a *domain.Annotation) (*domain.Annotation, error)
	Update(ctx context.Context, tenantID, annotationID uuid.UUID, params domain.AnnotationUpdateParams) (*domain.Annotation, error)
	SetStatusIfOpen(ctx context.Context, tenantID, annotationID uuid.UUID, status domain.AnnotationStatus, resolvedBy uuid.UUID) (bool, error)
	Delete(ctx context.Context, tenantID, annotationID uuid.UUID) error
	GetByID(ctx context.Context, tenantID, annotationID uuid.UUID) (*domain.Annotation, error)
	ListByTheme(ctx context.Context, tenantID, themeID uuid.UUID, filter domain.AnnotationFilter) ([]*domain.Annotation, error)
	Stats(ctx context.Context, tenantID, themeID uuid.UUID) (*domain.AnnotationStats, error)
}

type themeRepo interface {
	GetByID(ctx context.Context, tenantID, themeID uuid.UUID) (*domain.Theme, error)
}

type notifier interface {
	Send(ctx context.Context, n domain.Notification)
}

// Service provides annotation operations.
type Service struct {
	annotations annotationRepo
	themes      themeRepo
	notify      notifier
	log         *slog.Logger
}

// NewService creates a new annotation service.
func NewService(log *slog.Logger, annotations annotationRepo, themes themeRepo, notify notifier) *Service {
	return &Service{
		annotations: annotations,
		themes:      themes,
		notify:      notify,
		log:         log.With("service", "annotation"),
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
