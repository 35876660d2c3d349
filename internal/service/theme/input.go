package theme

import (
	"strings"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

const (
	maxTitleLength = 255
	maxTags        = 20
	maxListLimit   = 100
)

// CreateInput holds the parameters for creating a draft theme.
type CreateInput struct {
	Title       string
	Description *string
	Difficulty  domain.Difficulty
	Tags        []string
	Content     domain.ThemeContent
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be easy, medium or hard"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetInput holds the parameters for fetching a single theme.
type GetInput struct {
	ThemeID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetInput) Validate() error {
	if i.ThemeID == uuid.Nil {
		return domain.NewValidationError("theme_id", "required")
	}
	return nil
}

// ListInput holds the parameters for listing a tenant's themes.
type ListInput struct {
	Filter domain.ThemeFilter
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Filter.Status != "" && !i.Filter.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown theme status"})
	}
	if i.Filter.Limit < 0 || i.Filter.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Filter.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for a partial theme edit.
type UpdateInput struct {
	ThemeID       uuid.UUID
	Title         *string
	Description   *string
	Difficulty    *domain.Difficulty
	Tags          []string
	Content       *domain.ThemeContent
	ChangeSummary *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ThemeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "theme_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.Difficulty == nil && i.Tags == nil && i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(*i.Title) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
		}
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be easy, medium or hard"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteInput holds the parameters for deleting a theme.
type DeleteInput struct {
	ThemeID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	if i.ThemeID == uuid.Nil {
		return domain.NewValidationError("theme_id", "required")
	}
	return nil
}
