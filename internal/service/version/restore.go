package version

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Restore creates a new version whose content equals a past snapshot's and
// writes that content back onto the theme. The historical snapshot itself is
// never touched: restore is append-only like every other version write.
func (s *Service) Restore(ctx context.Context, input RestoreInput) (*domain.ThemeVersion, error) {
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

	snapshot, err := s.versions.GetByID(ctx, act.TenantID, input.VersionID)
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}
	if snapshot.ThemeID != th.ID {
		return nil, fmt.Errorf("version %s: %w", input.VersionID, domain.ErrNotFound)
	}

	var restored *domain.ThemeVersion
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		restored, createErr = s.versions.Create(txCtx, &domain.ThemeVersion{
			ID:            uuid.New(),
			ThemeID:       th.ID,
			TenantID:      act.TenantID,
			Title:         snapshot.Title,
			Status:        th.Status,
			Difficulty:    snapshot.Difficulty,
			Tags:          snapshot.Tags,
			Content:       snapshot.Content,
			ChangeSummary: ptr(fmt.Sprintf("restored from version %d", snapshot.Version)),
			CreatedBy:     act.UserID,
		})
		if createErr != nil {
			return fmt.Errorf("create restored version: %w", createErr)
		}

		content := snapshot.Content
		if _, err := s.themes.Update(txCtx, act.TenantID, th.ID, domain.ThemeUpdateParams{
			Title:      &snapshot.Title,
			Difficulty: &snapshot.Difficulty,
			Tags:       snapshot.Tags,
			Content:    &content,
		}); err != nil {
			return fmt.Errorf("update theme: %w", err)
		}

		if err := s.themes.SetVersion(txCtx, act.TenantID, th.ID, restored.Version); err != nil {
			return fmt.Errorf("set theme version: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "version restored",
		slog.String("theme_id", th.ID.String()),
		slog.Int("from_version", snapshot.Version),
		slog.Int("new_version", restored.Version),
	)

	return restored, nil
}
