package workflow

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// SubmitInput holds the parameters for submitting a theme for review.
type SubmitInput struct {
	ThemeID uuid.UUID
	Comment *string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	if i.ThemeID == uuid.Nil {
		return domain.NewValidationError("theme_id", "required")
	}
	return nil
}

// ApproveInput holds the parameters for approving a theme.
type ApproveInput struct {
	ThemeID uuid.UUID
	Comment *string
}

// Validate checks all fields and collects all errors.
func (i ApproveInput) Validate() error {
	if i.ThemeID == uuid.Nil {
		return domain.NewValidationError("theme_id", "required")
	}
	return nil
}

// RejectInput holds the parameters for rejecting a theme back to draft.
// Comment is mandatory: the author must learn why.
type RejectInput struct {
	ThemeID uuid.UUID
	Comment string
}

// Validate checks all fields and collects all errors.
func (i RejectInput) Validate() error {
	var errs []domain.FieldError
	if i.ThemeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "theme_id", Message: "required"})
	}
	if strings.TrimSpace(i.Comment) == "" {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PublishInput holds the parameters for publishing an approved theme.
type PublishInput struct {
	ThemeID uuid.UUID
	Comment *string
}

// Validate checks all fields and collects all errors.
func (i PublishInput) Validate() error {
	if i.ThemeID == uuid.Nil {
		return domain.NewValidationError("theme_id", "required")
	}
	return nil
}

// ArchiveInput holds the parameters for archiving a theme.
type ArchiveInput struct {
	ThemeID uuid.UUID
	Reason  *string
}

// Validate checks all fields and collects all errors.
func (i ArchiveInput) Validate() error {
	if i.ThemeID == uuid.Nil {
		return domain.NewValidationError("theme_id", "required")
	}
	return nil
}

// AssignReviewerInput holds the parameters for assigning a reviewer.
type AssignReviewerInput struct {
	ThemeID    uuid.UUID
	ReviewerID uuid.UUID
	Priority   domain.AssignmentPriority // empty = normal
	DueDate    *time.Time
}

// Validate checks all fields and collects all errors.
func (i AssignReviewerInput) Validate() error {
	var errs []domain.FieldError
	if i.ThemeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "theme_id", Message: "required"})
	}
	if i.ReviewerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reviewer_id", Message: "required"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be low, normal or high"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryInput holds the parameters for reading a theme's transition history.
type HistoryInput struct {
	ThemeID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	if i.ThemeID == uuid.Nil {
		return domain.NewValidationError("theme_id", "required")
	}
	return nil
}
