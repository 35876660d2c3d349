package annotation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Update edits an annotation's content, type and/or metadata. Only the
// original author may edit, and only while the annotation is open.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Annotation, error) {
	act, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.annotations.GetByID(ctx, act.TenantID, input.AnnotationID)
	if err != nil {
		return nil, fmt.Errorf("get annotation: %w", err)
	}

	if existing.AuthorID != act.UserID {
		return nil, domain.ErrForbidden
	}
	if !existing.IsOpen() {
		return nil, domain.NewPreconditionError(domain.ReasonAlreadyResolved,
			fmt.Sprintf("annotation is %s and can no longer be edited", existing.Status))
	}

	updated, err := s.annotations.Update(ctx, act.TenantID, input.AnnotationID, domain.AnnotationUpdateParams{
		Content:  input.Content,
		Type:     input.Type,
		Metadata: input.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("update annotation: %w", err)
	}

	s.log.InfoContext(ctx, "annotation updated",
		slog.String("annotation_id", updated.ID.String()),
		slog.String("user_id", act.UserID.String()),
	)

	return updated, nil
}
