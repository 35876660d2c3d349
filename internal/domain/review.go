package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewAssignment links a reviewer to a theme under review. Created when a
// theme is submitted or explicitly assigned; completed when the reviewer
// approves or rejects.
type ReviewAssignment struct {
	ID           uuid.UUID
	ThemeID      uuid.UUID
	TenantID     uuid.UUID
	ReviewerID   uuid.UUID
	AssignedBy   uuid.UUID
	ReviewerRole UserRole
	Priority     AssignmentPriority
	DueDate      *time.Time
	Status       AssignmentStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ThemeStatusHistory is an append-only log entry recording one workflow
// transition. Never mutated or deleted; the sole source of audit truth.
type ThemeStatusHistory struct {
	ID         uuid.UUID
	ThemeID    uuid.UUID
	TenantID   uuid.UUID
	FromStatus ThemeStatus
	ToStatus   ThemeStatus
	ChangedBy  uuid.UUID
	Comment    *string
	CreatedAt  time.Time
}
