package theme

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Update applies a partial edit to a draft theme and appends a version
// snapshot of the edited state in the same transaction. The creator edits
// their own themes, direction and admin anyone's, and only while the theme
// is in draft.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Theme, error) {
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

	if th.CreatedBy != act.UserID && !act.Role.ManagesTenantContent() {
		return nil, fmt.Errorf("only the creator may edit a theme: %w", domain.ErrForbidden)
	}
	if th.Status != domain.ThemeStatusDraft {
		return nil, domain.NewPreconditionError(domain.ReasonNotEditable,
			fmt.Sprintf("theme is %s, only draft themes can be edited", th.Status))
	}

	summary := input.ChangeSummary
	if summary == nil {
		summary = ptr("content edited")
	}

	var updated *domain.Theme
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.themes.Update(txCtx, act.TenantID, th.ID, domain.ThemeUpdateParams{
			Title:       input.Title,
			Description: input.Description,
			Difficulty:  input.Difficulty,
			Tags:        input.Tags,
			Content:     input.Content,
		})
		if updateErr != nil {
			return fmt.Errorf("update theme: %w", updateErr)
		}

		snapshot, updateErr := s.versions.Create(txCtx, snapshotOf(updated, act.UserID, summary))
		if updateErr != nil {
			return fmt.Errorf("create version: %w", updateErr)
		}

		if err := s.themes.SetVersion(txCtx, act.TenantID, th.ID, snapshot.Version); err != nil {
			return fmt.Errorf("set theme version: %w", err)
		}
		updated.Version = snapshot.Version
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "theme updated",
		slog.String("theme_id", th.ID.String()),
		slog.Int("version", updated.Version),
	)

	return updated, nil
}
