package theme

import (
	"context"
	"fmt"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Get returns a single theme scoped to the caller's tenant.
func (s *Service) Get(ctx context.Context, input GetInput) (*domain.Theme, error) {
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

	return th, nil
}

// List returns the tenant's themes matching the filter, newest-updated first,
// with the total count before pagination.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	act, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	themes, total, err := s.themes.List(ctx, act.TenantID, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}

	return &ListResult{Themes: themes, Total: total}, nil
}
