package theme

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Delete removes a theme and, via CASCADE, its versions, annotations,
// assignments and history. The creator deletes their own themes; direction
// and admin may delete anyone's. Published themes must be archived first.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	act, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	th, err := s.themes.GetByID(ctx, act.TenantID, input.ThemeID)
	if err != nil {
		return fmt.Errorf("get theme: %w", err)
	}

	if th.CreatedBy != act.UserID && !act.Role.ManagesTenantContent() {
		return fmt.Errorf("only the creator may delete a theme: %w", domain.ErrForbidden)
	}
	if th.Status == domain.ThemeStatusPublished {
		return domain.NewPreconditionError(domain.ReasonNotEditable,
			"published themes must be archived before deletion")
	}

	if err := s.themes.Delete(ctx, act.TenantID, th.ID); err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}

	s.log.InfoContext(ctx, "theme deleted",
		slog.String("theme_id", th.ID.String()),
		slog.String("tenant_id", act.TenantID.String()),
	)

	return nil
}
