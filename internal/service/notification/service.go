// Package notification implements the in-app notification sink and the
// recipient-facing read operations. Send is fire-and-forget: delivery
// failures are logged and never propagated, so a broken notification write
// cannot fail the workflow operation that triggered it.
package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/pkg/ctxutil"
)

// notificationRepo defines the repository interface needed by this service.
type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByRecipient(ctx context.Context, tenantID, recipientID uuid.UUID, unreadOnly bool, limit int) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, tenantID, recipientID, notificationID uuid.UUID) error
}

// Service implements notification delivery and reads.
type Service struct {
	notifications notificationRepo
	log           *slog.Logger
}

// NewService creates a new notification service.
func NewService(log *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		notifications: notifications,
		log:           log.With("service", "notification"),
	}
}

// actor is the authenticated caller extracted from the request context.
type actor struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
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
	return actor{UserID: userID, TenantID: tenantID}, nil
}
