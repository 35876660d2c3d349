package annotation

import (
	"context"
	"fmt"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// List returns a theme's annotations, newest-first, narrowed by the filter.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Annotation, error) {
	act, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.themes.GetByID(ctx, act.TenantID, input.ThemeID); err != nil {
		return nil, fmt.Errorf("get theme: %w", err)
	}

	annotations, err := s.annotations.ListByTheme(ctx, act.TenantID, input.ThemeID, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}

	return annotations, nil
}

// Stats aggregates annotation counts by status and type for a theme.
func (s *Service) Stats(ctx context.Context, input StatsInput) (*domain.AnnotationStats, error) {
	act, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.themes.GetByID(ctx, act.TenantID, input.ThemeID); err != nil {
		return nil, fmt.Errorf("get theme: %w", err)
	}

	stats, err := s.annotations.Stats(ctx, act.TenantID, input.ThemeID)
	if err != nil {
		return nil, fmt.Errorf("annotation stats: %w", err)
	}

	return stats, nil
}
