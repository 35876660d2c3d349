package theme

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Create inserts a new draft theme and its initial version snapshot in one
// transaction. The theme's version counter starts at the snapshot's number.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Theme, error) {
	act, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyMedium
	}

	var created *domain.Theme
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.themes.Create(txCtx, &domain.Theme{
			ID:          uuid.New(),
			TenantID:    act.TenantID,
			Title:       input.Title,
			Description: input.Description,
			Difficulty:  difficulty,
			Tags:        input.Tags,
			Content:     input.Content,
			Status:      domain.ThemeStatusDraft,
			CreatedBy:   act.UserID,
		})
		if createErr != nil {
			return fmt.Errorf("create theme: %w", createErr)
		}

		snapshot, createErr := s.versions.Create(txCtx, snapshotOf(created, act.UserID, ptr("initial version")))
		if createErr != nil {
			return fmt.Errorf("create initial version: %w", createErr)
		}

		if err := s.themes.SetVersion(txCtx, act.TenantID, created.ID, snapshot.Version); err != nil {
			return fmt.Errorf("set theme version: %w", err)
		}
		created.Version = snapshot.Version
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "theme created",
		slog.String("theme_id", created.ID.String()),
		slog.String("tenant_id", act.TenantID.String()),
	)

	return created, nil
}
