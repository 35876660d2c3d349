package domain

import (
	"time"

	"github.com/google/uuid"
)

// Annotation is a comment or suggestion anchored to a JSON path within a
// specific theme version. Immutable except for status/resolver fields and
// the author-only content edit.
type Annotation struct {
	ID           uuid.UUID
	ThemeID      uuid.UUID
	ThemeVersion int
	TenantID     uuid.UUID
	AuthorID     uuid.UUID
	JSONPath     string
	Type         AnnotationType
	Content      string
	Suggestion   *string
	Status       AnnotationStatus
	ResolvedBy   *uuid.UUID
	ResolvedAt   *time.Time
	Metadata     map[string]any
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOpen reports whether the annotation is still unresolved.
func (a Annotation) IsOpen() bool { return a.Status == AnnotationStatusOpen }

// BlocksApproval reports whether the annotation prevents a
// pending_review -> approved transition.
func (a Annotation) BlocksApproval() bool {
	return a.IsOpen() && a.Type.IsCritical()
}

// AnnotationStats aggregates annotation counts for a theme.
type AnnotationStats struct {
	ThemeID      uuid.UUID
	Total        int
	ByStatus     map[AnnotationStatus]int
	ByType       map[AnnotationType]int
	OpenCritical int
}

// AnnotationUpdateParams holds the author-editable fields. nil means
// "don't change".
type AnnotationUpdateParams struct {
	Content  *string
	Type     *AnnotationType
	Metadata map[string]any
}

// AnnotationFilter narrows annotation queries. Zero values mean "no filter".
type AnnotationFilter struct {
	Status       AnnotationStatus
	Type         AnnotationType
	ThemeVersion int
}
