package annotation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Delete removes an annotation permanently. Allowed for the original author;
// direction and admin may remove anyone's.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	act, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	existing, err := s.annotations.GetByID(ctx, act.TenantID, input.AnnotationID)
	if err != nil {
		return fmt.Errorf("get annotation: %w", err)
	}

	if existing.AuthorID != act.UserID && !act.Role.ManagesTenantContent() {
		return domain.ErrForbidden
	}

	if err := s.annotations.Delete(ctx, act.TenantID, input.AnnotationID); err != nil {
		return fmt.Errorf("delete annotation: %w", err)
	}

	s.log.InfoContext(ctx, "annotation deleted",
		slog.String("annotation_id", input.AnnotationID.String()),
		slog.String("user_id", act.UserID.String()),
	)

	return nil
}
