package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Publish moves an approved theme to published: stamps the publish fields,
// flips the public-visibility flag, writes a milestone version snapshot in
// the same transaction and notifies the author.
func (s *Service) Publish(ctx context.Context, input PublishInput) (*TransitionResult, error) {
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

	if err := domain.CheckTransition(th.Status, domain.ThemeStatusPublished, act.Role); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	isPublic := true
	stamps := domain.TransitionStamps{
		PublishedAt: &now,
		PublishedBy: &act.UserID,
		IsPublic:    &isPublic,
	}

	err = s.applyTransition(ctx, act, th, domain.ThemeStatusPublished, input.Comment, stamps,
		func(txCtx context.Context) error {
			snapshot, err := s.versions.Create(txCtx, &domain.ThemeVersion{
				ID:            uuid.New(),
				ThemeID:       th.ID,
				TenantID:      act.TenantID,
				Title:         th.Title,
				Status:        domain.ThemeStatusPublished,
				Difficulty:    th.Difficulty,
				Tags:          th.Tags,
				Content:       th.Content,
				ChangeSummary: ptr("published"),
				IsMilestone:   true,
				CreatedBy:     act.UserID,
			})
			if err != nil {
				return fmt.Errorf("create milestone version: %w", err)
			}
			if err := s.themes.SetVersion(txCtx, act.TenantID, th.ID, snapshot.Version); err != nil {
				return fmt.Errorf("set theme version: %w", err)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	s.notifyAuthor(ctx, act, th, domain.NotificationThemePublished,
		fmt.Sprintf("Theme %q was published", th.Title))

	s.log.InfoContext(ctx, "theme published",
		slog.String("theme_id", th.ID.String()),
		slog.String("user_id", act.UserID.String()),
	)

	return &TransitionResult{
		ThemeID:        th.ID,
		PreviousStatus: th.Status,
		NewStatus:      domain.ThemeStatusPublished,
	}, nil
}
