package annotation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Create inserts a new open annotation on a theme version and notifies the
// theme's author. The target theme must exist within the caller's tenant.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Annotation, error) {
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

	themeVersion := input.ThemeVersion
	if themeVersion == 0 {
		themeVersion = th.Version
	}

	created, err := s.annotations.Create(ctx, &domain.Annotation{
		ID:           uuid.New(),
		ThemeID:      th.ID,
		ThemeVersion: themeVersion,
		TenantID:     act.TenantID,
		AuthorID:     act.UserID,
		JSONPath:     strings.TrimSpace(input.JSONPath),
		Type:         input.Type,
		Content:      strings.TrimSpace(input.Content),
		Suggestion:   input.Suggestion,
		Metadata:     input.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("create annotation: %w", err)
	}

	if th.CreatedBy != act.UserID {
		s.notify.Send(ctx, domain.Notification{
			ID:          uuid.New(),
			TenantID:    act.TenantID,
			RecipientID: th.CreatedBy,
			Type:        domain.NotificationAnnotationAdded,
			ThemeID:     &th.ID,
			Message:     fmt.Sprintf("New %s annotation on theme %q", created.Type, th.Title),
		})
	}

	s.log.InfoContext(ctx, "annotation created",
		slog.String("annotation_id", created.ID.String()),
		slog.String("theme_id", th.ID.String()),
		slog.String("type", created.Type.String()),
	)

	return created, nil
}
