package version

import (
	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// SnapshotInput holds the parameters for snapshotting a theme's current state.
type SnapshotInput struct {
	ThemeID       uuid.UUID
	ChangeSummary *string
	IsMilestone   bool
}

// Validate checks all fields and collects all errors.
func (i SnapshotInput) Validate() error {
	if i.ThemeID == uuid.Nil {
		return domain.NewValidationError("theme_id", "required")
	}
	return nil
}

// RestoreInput holds the parameters for restoring a past version.
type RestoreInput struct {
	ThemeID   uuid.UUID
	VersionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RestoreInput) Validate() error {
	var errs []domain.FieldError
	if i.ThemeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "theme_id", Message: "required"})
	}
	if i.VersionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "version_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryInput holds the parameters for listing a theme's versions.
type HistoryInput struct {
	ThemeID        uuid.UUID
	Limit          int
	MilestonesOnly bool
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError
	if i.ThemeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "theme_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CompareInput holds the parameters for comparing two versions.
type CompareInput struct {
	Version1ID uuid.UUID
	Version2ID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CompareInput) Validate() error {
	var errs []domain.FieldError
	if i.Version1ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "version1", Message: "required"})
	}
	if i.Version2ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "version2", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
