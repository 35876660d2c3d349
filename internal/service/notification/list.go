package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

const defaultListLimit = 50

// ListInput holds the parameters for listing the caller's notifications.
type ListInput struct {
	UnreadOnly bool
	Limit      int
}

// List returns the caller's notifications, newest-first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Notification, error) {
	act, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 200 {
		limit = defaultListLimit
	}

	notifications, err := s.notifications.ListByRecipient(ctx, act.TenantID, act.UserID, input.UnreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead marks one of the caller's notifications as read. Returns
// ErrNotFound when the notification does not exist or belongs to someone
// else.
func (s *Service) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	act, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	if notificationID == uuid.Nil {
		return domain.NewValidationError("notification_id", "required")
	}

	if err := s.notifications.MarkRead(ctx, act.TenantID, act.UserID, notificationID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	return nil
}
