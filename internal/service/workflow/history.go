package workflow

import (
	"context"
	"fmt"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// History returns the transition log for a theme, newest-first.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]*domain.ThemeStatusHistory, error) {
	act, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Existence check doubles as the tenant-isolation gate.
	if _, err := s.themes.GetByID(ctx, act.TenantID, input.ThemeID); err != nil {
		return nil, fmt.Errorf("get theme: %w", err)
	}

	entries, err := s.history.ListByTheme(ctx, act.TenantID, input.ThemeID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return entries, nil
}
