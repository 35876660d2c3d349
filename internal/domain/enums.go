package domain

// ThemeStatus represents the workflow state of a theme.
type ThemeStatus string

const (
	ThemeStatusDraft         ThemeStatus = "draft"
	ThemeStatusPendingReview ThemeStatus = "pending_review"
	ThemeStatusApproved      ThemeStatus = "approved"
	ThemeStatusPublished     ThemeStatus = "published"
	ThemeStatusArchived      ThemeStatus = "archived"
)

func (s ThemeStatus) String() string { return string(s) }

func (s ThemeStatus) IsValid() bool {
	switch s {
	case ThemeStatusDraft, ThemeStatusPendingReview, ThemeStatusApproved,
		ThemeStatusPublished, ThemeStatusArchived:
		return true
	}
	return false
}

// Difficulty represents the pedagogical difficulty of a theme.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// AnnotationType classifies an annotation. Error and warning annotations are
// "critical": they block approval while open.
type AnnotationType string

const (
	AnnotationTypeComment    AnnotationType = "comment"
	AnnotationTypeSuggestion AnnotationType = "suggestion"
	AnnotationTypeError      AnnotationType = "error"
	AnnotationTypeWarning    AnnotationType = "warning"
	AnnotationTypeInfo       AnnotationType = "info"
)

func (t AnnotationType) String() string { return string(t) }

func (t AnnotationType) IsValid() bool {
	switch t {
	case AnnotationTypeComment, AnnotationTypeSuggestion, AnnotationTypeError,
		AnnotationTypeWarning, AnnotationTypeInfo:
		return true
	}
	return false
}

// IsCritical reports whether an open annotation of this type blocks approval.
func (t AnnotationType) IsCritical() bool {
	return t == AnnotationTypeError || t == AnnotationTypeWarning
}

// AnnotationStatus is the resolution state of an annotation.
// open -> resolved and open -> rejected are the only transitions; both are terminal.
type AnnotationStatus string

const (
	AnnotationStatusOpen     AnnotationStatus = "open"
	AnnotationStatusResolved AnnotationStatus = "resolved"
	AnnotationStatusRejected AnnotationStatus = "rejected"
)

func (s AnnotationStatus) String() string { return string(s) }

func (s AnnotationStatus) IsValid() bool {
	switch s {
	case AnnotationStatusOpen, AnnotationStatusResolved, AnnotationStatusRejected:
		return true
	}
	return false
}

// AssignmentStatus is the state of a review assignment.
type AssignmentStatus string

const (
	AssignmentStatusPending    AssignmentStatus = "pending"
	AssignmentStatusInProgress AssignmentStatus = "in_progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
)

func (s AssignmentStatus) String() string { return string(s) }

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusInProgress, AssignmentStatusCompleted:
		return true
	}
	return false
}

// AssignmentPriority orders review assignments in a reviewer's queue.
type AssignmentPriority string

const (
	PriorityLow    AssignmentPriority = "low"
	PriorityNormal AssignmentPriority = "normal"
	PriorityHigh   AssignmentPriority = "high"
)

func (p AssignmentPriority) String() string { return string(p) }

func (p AssignmentPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user within a tenant.
type UserRole string

const (
	UserRoleTeacher   UserRole = "teacher"
	UserRoleReferent  UserRole = "referent"
	UserRoleDirection UserRole = "direction"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleTeacher, UserRoleReferent, UserRoleDirection, UserRoleAdmin:
		return true
	}
	return false
}

// IsReviewer reports whether the role may approve, reject or be assigned
// themes for review.
func (r UserRole) IsReviewer() bool {
	switch r {
	case UserRoleReferent, UserRoleDirection, UserRoleAdmin:
		return true
	}
	return false
}

// NotificationType classifies an in-app notification.
type NotificationType string

const (
	NotificationThemeSubmitted  NotificationType = "theme_submitted"
	NotificationThemeApproved   NotificationType = "theme_approved"
	NotificationThemeRejected   NotificationType = "theme_rejected"
	NotificationThemePublished  NotificationType = "theme_published"
	NotificationReviewAssigned  NotificationType = "review_assigned"
	NotificationAnnotationAdded NotificationType = "annotation_added"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationThemeSubmitted, NotificationThemeApproved, NotificationThemeRejected,
		NotificationThemePublished, NotificationReviewAssigned, NotificationAnnotationAdded:
		return true
	}
	return false
}
