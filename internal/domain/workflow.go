package domain

// allowedTransitions is the legal edge set of the theme workflow.
// Rejection is the pending_review -> draft back-edge; archived -> draft
// is "unarchive".
var allowedTransitions = map[ThemeStatus][]ThemeStatus{
	ThemeStatusDraft:         {ThemeStatusPendingReview, ThemeStatusArchived},
	ThemeStatusPendingReview: {ThemeStatusApproved, ThemeStatusDraft},
	ThemeStatusApproved:      {ThemeStatusPublished, ThemeStatusDraft},
	ThemeStatusPublished:     {ThemeStatusArchived},
	ThemeStatusArchived:      {ThemeStatusDraft},
}

// transitionRoles is the role allow-list per *target* state.
var transitionRoles = map[ThemeStatus][]UserRole{
	ThemeStatusDraft:         {UserRoleTeacher, UserRoleReferent, UserRoleDirection, UserRoleAdmin},
	ThemeStatusPendingReview: {UserRoleTeacher, UserRoleReferent, UserRoleDirection, UserRoleAdmin},
	ThemeStatusApproved:      {UserRoleReferent, UserRoleDirection, UserRoleAdmin},
	ThemeStatusPublished:     {UserRoleDirection, UserRoleAdmin},
	ThemeStatusArchived:      {UserRoleTeacher, UserRoleReferent, UserRoleDirection, UserRoleAdmin},
}

// CanTransition reports whether the edge from -> to exists in the workflow graph.
func CanTransition(from, to ThemeStatus) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// RoleMayTarget reports whether the role is allowed to move a theme into the
// given target state.
func RoleMayTarget(role UserRole, target ThemeStatus) bool {
	for _, r := range transitionRoles[target] {
		if r == role {
			return true
		}
	}
	return false
}

// AllowedTargets returns the target states reachable from the given status.
func AllowedTargets(from ThemeStatus) []ThemeStatus {
	targets := allowedTransitions[from]
	out := make([]ThemeStatus, len(targets))
	copy(out, targets)
	return out
}

// CheckTransition validates both the edge and the actor's role. Returns a
// TransitionError for an illegal edge and ErrForbidden for a missing role
// permission, nil otherwise.
func CheckTransition(from, to ThemeStatus, role UserRole) error {
	if !CanTransition(from, to) {
		return NewTransitionError(from, to)
	}
	if !RoleMayTarget(role, to) {
		return ErrForbidden
	}
	return nil
}

// CheckCompleteness runs the submit-time completeness check: a theme needs a
// non-empty title and at least one question or flashcard before review.
func CheckCompleteness(title string, content ThemeContent) error {
	if title == "" {
		return NewPreconditionError(ReasonIncompleteContent, "theme has no title")
	}
	if len(content.Questions) == 0 && len(content.Flashcards) == 0 {
		return NewPreconditionError(ReasonIncompleteContent, "theme needs at least one question or flashcard")
	}
	return nil
}
