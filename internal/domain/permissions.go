package domain

// Resource identifies a protected resource class.
type Resource string

const (
	ResourceTheme        Resource = "theme"
	ResourceAnnotation   Resource = "annotation"
	ResourceVersion      Resource = "version"
	ResourceReview       Resource = "review"
	ResourceTenant       Resource = "tenant"
	ResourceNotification Resource = "notification"
)

// Action identifies an operation on a resource.
type Action string

const (
	ActionRead    Action = "read"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionResolve Action = "resolve"
	ActionAssign  Action = "assign"
	ActionRestore Action = "restore"
)

type permKey struct {
	role     UserRole
	resource Resource
	action   Action
}

// permissions is the static (role, resource, action) allow table, evaluated
// once at the boundary before invoking core operations.
var permissions = buildPermissions()

func buildPermissions() map[permKey]bool {
	t := make(map[permKey]bool)

	grant := func(role UserRole, resource Resource, actions ...Action) {
		for _, a := range actions {
			t[permKey{role, resource, a}] = true
		}
	}

	// The table answers "may this role invoke the operation at all"; scope
	// rules (own content vs. anyone's) live in the services.

	// Teachers author content: full control of their own themes and
	// annotations, snapshots and restores on their drafts.
	grant(UserRoleTeacher, ResourceTheme, ActionRead, ActionCreate, ActionUpdate, ActionDelete)
	grant(UserRoleTeacher, ResourceAnnotation, ActionRead, ActionCreate, ActionUpdate, ActionDelete)
	grant(UserRoleTeacher, ResourceVersion, ActionRead, ActionCreate, ActionRestore)
	grant(UserRoleTeacher, ResourceReview, ActionRead)
	grant(UserRoleTeacher, ResourceTenant, ActionRead)
	grant(UserRoleTeacher, ResourceNotification, ActionRead, ActionUpdate)

	// Referents review: everything a teacher can, plus resolving annotations
	// and assigning reviewers.
	grant(UserRoleReferent, ResourceTheme, ActionRead, ActionCreate, ActionUpdate, ActionDelete)
	grant(UserRoleReferent, ResourceAnnotation, ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionResolve)
	grant(UserRoleReferent, ResourceVersion, ActionRead, ActionCreate, ActionRestore)
	grant(UserRoleReferent, ResourceReview, ActionRead, ActionAssign)
	grant(UserRoleReferent, ResourceTenant, ActionRead)
	grant(UserRoleReferent, ResourceNotification, ActionRead, ActionUpdate)

	// Direction additionally manages the tenant and acts on content it does
	// not own.
	grant(UserRoleDirection, ResourceTheme, ActionRead, ActionCreate, ActionUpdate, ActionDelete)
	grant(UserRoleDirection, ResourceAnnotation, ActionRead, ActionCreate, ActionUpdate, ActionResolve, ActionDelete)
	grant(UserRoleDirection, ResourceVersion, ActionRead, ActionCreate, ActionRestore)
	grant(UserRoleDirection, ResourceReview, ActionRead, ActionAssign)
	grant(UserRoleDirection, ResourceTenant, ActionRead, ActionUpdate)
	grant(UserRoleDirection, ResourceNotification, ActionRead, ActionUpdate)

	// Admin can do everything.
	for _, res := range []Resource{ResourceTheme, ResourceAnnotation, ResourceVersion,
		ResourceReview, ResourceTenant, ResourceNotification} {
		grant(UserRoleAdmin, res, ActionRead, ActionCreate, ActionUpdate, ActionDelete,
			ActionResolve, ActionAssign, ActionRestore)
	}

	return t
}

// Can reports whether the role may perform the action on the resource.
// Pure table lookup with no internal state.
func Can(role UserRole, resource Resource, action Action) bool {
	return permissions[permKey{role, resource, action}]
}

// ManagesTenantContent reports whether the role may modify or delete content
// owned by other users of the tenant.
func (r UserRole) ManagesTenantContent() bool {
	return r == UserRoleDirection || r == UserRoleAdmin
}
