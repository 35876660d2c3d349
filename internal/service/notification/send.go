package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Send writes one in-app notification. Failures are logged and swallowed.
// The notification id is generated here when the caller left it zero.
func (s *Service) Send(ctx context.Context, n domain.Notification) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.TenantID == uuid.Nil || n.RecipientID == uuid.Nil {
		s.log.WarnContext(ctx, "notification dropped: missing tenant or recipient",
			slog.String("type", string(n.Type)))
		return
	}

	if err := s.notifications.Create(ctx, &n); err != nil {
		s.log.ErrorContext(ctx, "notification delivery failed",
			slog.String("type", string(n.Type)),
			slog.String("recipient_id", n.RecipientID.String()),
			slog.Any("error", err),
		)
	}
}
