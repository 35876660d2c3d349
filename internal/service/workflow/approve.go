package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Approve moves a pending_review theme to approved. Blocked while any open
// error or warning annotation exists on the theme. Completes the reviewer
// assignments for the theme in the same transaction and notifies the author.
func (s *Service) Approve(ctx context.Context, input ApproveInput) (*TransitionResult, error) {
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

	if err := domain.CheckTransition(th.Status, domain.ThemeStatusApproved, act.Role); err != nil {
		return nil, err
	}

	open, err := s.annotations.CountOpenCritical(ctx, act.TenantID, th.ID)
	if err != nil {
		return nil, fmt.Errorf("count open critical annotations: %w", err)
	}
	if open > 0 {
		return nil, domain.NewPreconditionError(domain.ReasonOpenCriticalAnnotations,
			fmt.Sprintf("%d open critical annotation(s) block approval", open))
	}

	now := time.Now().UTC()
	stamps := domain.TransitionStamps{ReviewedAt: &now, ReviewedBy: &act.UserID}

	err = s.applyTransition(ctx, act, th, domain.ThemeStatusApproved, input.Comment, stamps,
		func(txCtx context.Context) error {
			if _, err := s.assignments.CompleteForTheme(txCtx, act.TenantID, th.ID); err != nil {
				return fmt.Errorf("complete assignments: %w", err)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	s.notifyAuthor(ctx, act, th, domain.NotificationThemeApproved,
		fmt.Sprintf("Theme %q was approved", th.Title))

	s.log.InfoContext(ctx, "theme approved",
		slog.String("theme_id", th.ID.String()),
		slog.String("user_id", act.UserID.String()),
	)

	return &TransitionResult{
		ThemeID:        th.ID,
		PreviousStatus: th.Status,
		NewStatus:      domain.ThemeStatusApproved,
	}, nil
}
