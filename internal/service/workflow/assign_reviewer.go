package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// AssignReviewer creates a pending review assignment for a theme under
// review. The reviewer must hold a reviewer-capable role and must not
// already have an open assignment for the theme.
func (s *Service) AssignReviewer(ctx context.Context, input AssignReviewerInput) (*domain.ReviewAssignment, error) {
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
	if th.Status != domain.ThemeStatusPendingReview {
		return nil, domain.NewTransitionError(th.Status, domain.ThemeStatusPendingReview)
	}

	reviewer, err := s.users.GetByID(ctx, act.TenantID, input.ReviewerID)
	if err != nil {
		return nil, fmt.Errorf("get reviewer: %w", err)
	}
	if !reviewer.Role.IsReviewer() {
		return nil, domain.NewPreconditionError(domain.ReasonNotReviewer,
			fmt.Sprintf("user %s holds role %s and cannot review", reviewer.ID, reviewer.Role))
	}

	active, err := s.assignments.HasActiveForReviewer(ctx, act.TenantID, th.ID, reviewer.ID)
	if err != nil {
		return nil, fmt.Errorf("check active assignment: %w", err)
	}
	if active {
		return nil, fmt.Errorf("reviewer already assigned: %w", domain.ErrAlreadyExists)
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}

	assignment, err := s.assignments.Create(ctx, &domain.ReviewAssignment{
		ID:           uuid.New(),
		ThemeID:      th.ID,
		TenantID:     act.TenantID,
		ReviewerID:   reviewer.ID,
		AssignedBy:   act.UserID,
		ReviewerRole: reviewer.Role,
		Priority:     priority,
		DueDate:      input.DueDate,
	})
	if err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	s.notify.Send(ctx, domain.Notification{
		ID:          uuid.New(),
		TenantID:    act.TenantID,
		RecipientID: reviewer.ID,
		Type:        domain.NotificationReviewAssigned,
		ThemeID:     &th.ID,
		Message:     fmt.Sprintf("You were assigned to review theme %q", th.Title),
	})

	s.log.InfoContext(ctx, "reviewer assigned",
		slog.String("theme_id", th.ID.String()),
		slog.String("reviewer_id", reviewer.ID.String()),
		slog.String("assigned_by", act.UserID.String()),
	)

	return assignment, nil
}
