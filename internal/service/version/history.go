package version

import (
	"context"
	"fmt"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// History returns a theme's snapshots, newest-first.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]*domain.ThemeVersion, error) {
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

	versions, err := s.versions.List(ctx, act.TenantID, input.ThemeID, input.Limit, input.MilestonesOnly)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}

	return versions, nil
}
