package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Archive moves a theme to archived where the transition graph allows it
// (from draft or published). No side effects beyond the history entry.
func (s *Service) Archive(ctx context.Context, input ArchiveInput) (*TransitionResult, error) {
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

	if err := domain.CheckTransition(th.Status, domain.ThemeStatusArchived, act.Role); err != nil {
		return nil, err
	}

	if err := s.applyTransition(ctx, act, th, domain.ThemeStatusArchived, input.Reason, domain.TransitionStamps{}, nil); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "theme archived",
		slog.String("theme_id", th.ID.String()),
		slog.String("user_id", act.UserID.String()),
	)

	return &TransitionResult{
		ThemeID:        th.ID,
		PreviousStatus: th.Status,
		NewStatus:      domain.ThemeStatusArchived,
	}, nil
}
