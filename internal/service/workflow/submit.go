package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// SubmitForReview moves a draft theme into pending_review. Only the theme's
// creator may submit, and the content completeness check must pass first.
// All reviewer-capable users in the tenant are notified on success.
func (s *Service) SubmitForReview(ctx context.Context, input SubmitInput) (*TransitionResult, error) {
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

	if th.CreatedBy != act.UserID {
		return nil, domain.ErrForbidden
	}
	if err := domain.CheckTransition(th.Status, domain.ThemeStatusPendingReview, act.Role); err != nil {
		return nil, err
	}
	if err := domain.CheckCompleteness(th.Title, th.Content); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stamps := domain.TransitionStamps{SubmittedAt: &now, SubmittedBy: &act.UserID}

	if err := s.applyTransition(ctx, act, th, domain.ThemeStatusPendingReview, input.Comment, stamps, nil); err != nil {
		return nil, err
	}

	s.notifyReviewers(ctx, act, th)

	s.log.InfoContext(ctx, "theme submitted for review",
		slog.String("theme_id", th.ID.String()),
		slog.String("user_id", act.UserID.String()),
	)

	return &TransitionResult{
		ThemeID:        th.ID,
		PreviousStatus: th.Status,
		NewStatus:      domain.ThemeStatusPendingReview,
	}, nil
}

// notifyReviewers fans out a submission notification to every active
// reviewer-capable user in the tenant, except the submitter.
func (s *Service) notifyReviewers(ctx context.Context, act actor, th *domain.Theme) {
	reviewers, err := s.users.ListByRoles(ctx, act.TenantID,
		domain.UserRoleReferent, domain.UserRoleDirection, domain.UserRoleAdmin)
	if err != nil {
		s.log.WarnContext(ctx, "list reviewers for notification",
			slog.String("theme_id", th.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	for _, reviewer := range reviewers {
		if reviewer.ID == act.UserID {
			continue
		}
		s.notify.Send(ctx, domain.Notification{
			ID:          uuid.New(),
			TenantID:    act.TenantID,
			RecipientID: reviewer.ID,
			Type:        domain.NotificationThemeSubmitted,
			ThemeID:     &th.ID,
			Message:     fmt.Sprintf("Theme %q was submitted for review", th.Title),
		})
	}
}
