package annotation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Resolve marks an open annotation resolved and stamps the resolver.
// Resolving a non-open annotation fails with an already_resolved error and
// never overwrites the original resolver fields.
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (*domain.Annotation, error) {
	return s.setStatus(ctx, input, domain.AnnotationStatusResolved)
}

// Reject marks an open annotation rejected ("won't fix"). Same terminal
// semantics as Resolve.
func (s *Service) Reject(ctx context.Context, input ResolveInput) (*domain.Annotation, error) {
	return s.setStatus(ctx, input, domain.AnnotationStatusRejected)
}

func (s *Service) setStatus(ctx context.Context, input ResolveInput, status domain.AnnotationStatus) (*domain.Annotation, error) {
	act, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !act.Role.IsReviewer() {
		return nil, domain.ErrForbidden
	}

	// Existence check first so a missing annotation reports not-found rather
	// than already-resolved.
	if _, err := s.annotations.GetByID(ctx, act.TenantID, input.AnnotationID); err != nil {
		return nil, fmt.Errorf("get annotation: %w", err)
	}

	ok, err := s.annotations.SetStatusIfOpen(ctx, act.TenantID, input.AnnotationID, status, act.UserID)
	if err != nil {
		return nil, fmt.Errorf("set annotation status: %w", err)
	}
	if !ok {
		return nil, domain.NewPreconditionError(domain.ReasonAlreadyResolved,
			"annotation is already resolved or rejected")
	}

	resolved, err := s.annotations.GetByID(ctx, act.TenantID, input.AnnotationID)
	if err != nil {
		return nil, fmt.Errorf("get annotation: %w", err)
	}

	s.log.InfoContext(ctx, "annotation status changed",
		slog.String("annotation_id", resolved.ID.String()),
		slog.String("status", status.String()),
		slog.String("user_id", act.UserID.String()),
	)

	return resolved, nil
}
