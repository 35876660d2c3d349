package version

import (
	"context"
	"fmt"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Compare computes the shallow structural diff between two snapshots of the
// same theme: title, difficulty, tag add/remove sets and item-count deltas.
func (s *Service) Compare(ctx context.Context, input CompareInput) (*domain.VersionDiff, error) {
	act, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	v1, err := s.versions.GetByID(ctx, act.TenantID, input.Version1ID)
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}
	v2, err := s.versions.GetByID(ctx, act.TenantID, input.Version2ID)
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}

	if v1.ThemeID != v2.ThemeID {
		return nil, domain.NewValidationError("version2", "versions belong to different themes")
	}

	diff := v1.Diff(*v2)
	return &diff, nil
}
