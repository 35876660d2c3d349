package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Reject sends a pending_review theme back to draft. The rejection comment
// is mandatory and is delivered to the author; open reviewer assignments are
// completed in the same transaction.
func (s *Service) Reject(ctx context.Context, input RejectInput) (*TransitionResult, error) {
	act, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	th, err := s.themes.GetByID(ctx, act.TenantID, input.ThemeID)
	if err != nil {
		return nil, fmt.Errorf("get theme: %w", err)
	}

	if err := domain.CheckTransition(th.Status, domain.ThemeStatusDraft, act.Role); err != nil {
		return nil, err
	}

	err = s.applyTransition(ctx, act, th, domain.ThemeStatusDraft, &input.Comment, domain.TransitionStamps{},
		func(txCtx context.Context) error {
			if _, err := s.assignments.CompleteForTheme(txCtx, act.TenantID, th.ID); err != nil {
				return fmt.Errorf("complete assignments: %w", err)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	s.notifyAuthor(ctx, act, th, domain.NotificationThemeRejected,
		fmt.Sprintf("Theme %q was rejected: %s", th.Title, input.Comment))

	s.log.InfoContext(ctx, "theme rejected",
		slog.String("theme_id", th.ID.String()),
		slog.String("user_id", act.UserID.String()),
	)

	return &TransitionResult{
		ThemeID:        th.ID,
		PreviousStatus: th.Status,
		NewStatus:      domain.ThemeStatusDraft,
	}, nil
}
