package version

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Snapshot appends a new immutable version of the theme's current state.
// The version number is always max(existing)+1 for the theme; the theme's
// version counter follows in the same transaction.
func (s *Service) Snapshot(ctx context.Context, input SnapshotInput) (*domain.ThemeVersion, error) {
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

	var created *domain.ThemeVersion
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.versions.Create(txCtx, &domain.ThemeVersion{
			ID:            uuid.New(),
			ThemeID:       th.ID,
			TenantID:      act.TenantID,
			Title:         th.Title,
			Status:        th.Status,
			Difficulty:    th.Difficulty,
			Tags:          th.Tags,
			Content:       th.Content,
			ChangeSummary: input.ChangeSummary,
			IsMilestone:   input.IsMilestone,
			CreatedBy:     act.UserID,
		})
		if createErr != nil {
			return fmt.Errorf("create version: %w", createErr)
		}

		if err := s.themes.SetVersion(txCtx, act.TenantID, th.ID, created.Version); err != nil {
			return fmt.Errorf("set theme version: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "version snapshot created",
		slog.String("theme_id", th.ID.String()),
		slog.Int("version", created.Version),
	)

	return created, nil
}
