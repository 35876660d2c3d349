package annotation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

const maxContentLength = 5000

// CreateInput holds the parameters for creating an annotation.
type CreateInput struct {
	ThemeID      uuid.UUID
	ThemeVersion int // 0 = annotate the theme's current version
	JSONPath     string
	Type         domain.AnnotationType
	Content      string
	Suggestion   *string
	Metadata     map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.ThemeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "theme_id", Message: "required"})
	}
	if i.ThemeVersion < 0 {
		errs = append(errs, domain.FieldError{Field: "theme_version", Message: "must not be negative"})
	}
	if strings.TrimSpace(i.JSONPath) == "" {
		errs = append(errs, domain.FieldError{Field: "json_path", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "annotation_type", Message: "must be comment, suggestion, error, warning or info"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Content) > maxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for the author-only annotation edit.
type UpdateInput struct {
	AnnotationID uuid.UUID
	Content      *string
	Type         *domain.AnnotationType
	Metadata     map[string]any
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.AnnotationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "annotation_id", Message: "required"})
	}
	if i.Content == nil && i.Type == nil && i.Metadata == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Content != nil {
		if strings.TrimSpace(*i.Content) == "" {
			errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
		}
		if len(*i.Content) > maxContentLength {
			errs = append(errs, domain.FieldError{Field: "content", Message: "max 5000 characters"})
		}
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "annotation_type", Message: "must be comment, suggestion, error, warning or info"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResolveInput holds the parameters for resolving or rejecting an annotation.
type ResolveInput struct {
	AnnotationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ResolveInput) Validate() error {
	if i.AnnotationID == uuid.Nil {
		return domain.NewValidationError("annotation_id", "required")
	}
	return nil
}

// ListInput holds the parameters for listing a theme's annotations.
type ListInput struct {
	ThemeID uuid.UUID
	Filter  domain.AnnotationFilter
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.ThemeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "theme_id", Message: "required"})
	}
	if i.Filter.Status != "" && !i.Filter.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be open, resolved or rejected"})
	}
	if i.Filter.Type != "" && !i.Filter.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "annotation_type", Message: "must be comment, suggestion, error, warning or info"})
	}
	if i.Filter.ThemeVersion < 0 {
		errs = append(errs, domain.FieldError{Field: "theme_version", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteInput holds the parameters for deleting an annotation.
type DeleteInput struct {
	AnnotationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	if i.AnnotationID == uuid.Nil {
		return domain.NewValidationError("annotation_id", "required")
	}
	return nil
}

// StatsInput holds the parameters for aggregating a theme's annotations.
type StatsInput struct {
	ThemeID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i StatsInput) Validate() error {
	if i.ThemeID == uuid.Nil {
		return domain.NewValidationError("theme_id", "required")
	}
	return nil
}
