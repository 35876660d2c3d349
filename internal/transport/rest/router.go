package rest

import (
	"net/http"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/internal/transport/middleware"
)

// RouterDeps bundles the handlers the router mounts.
type RouterDeps struct {
	Auth          *AuthHandler
	Tenants       *TenantHandler
	Themes        *ThemeHandler
	Workflow      *WorkflowHandler
	Annotations   *AnnotationHandler
	Versions      *VersionHandler
	Notifications *NotificationHandler
	Health        *HealthHandler
}

// NewRouter mounts all routes. public wraps routes reachable without a
// token (login, onboarding, health probes); protected additionally requires
// a valid token and an active tenant. Every protected route declares the
// (resource, action) pair it needs and is gated on the role permission
// table before its handler runs.
func NewRouter(deps RouterDeps, public, protected middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, mw middleware.Middleware, h http.HandlerFunc) {
		mux.Handle(pattern, mw(h))
	}
	guarded := func(pattern string, resource domain.Resource, action domain.Action, h http.HandlerFunc) {
		mux.Handle(pattern, protected(permit(resource, action)(h)))
	}

	// Health probes.
	handle("GET /health", public, deps.Health.Health)
	handle("GET /health/live", public, deps.Health.Live)
	handle("GET /health/ready", public, deps.Health.Ready)

	// Anonymous entry points.
	handle("POST /api/v1/auth/login", public, deps.Auth.Login)
	handle("POST /api/v1/tenants", public, deps.Tenants.Onboard)

	// Tenant.
	guarded("GET /api/v1/tenants/current", domain.ResourceTenant, domain.ActionRead, deps.Tenants.Current)

	// Themes.
	guarded("POST /api/v1/themes", domain.ResourceTheme, domain.ActionCreate, deps.Themes.Create)
	guarded("GET /api/v1/themes", domain.ResourceTheme, domain.ActionRead, deps.Themes.List)
	guarded("GET /api/v1/themes/{id}", domain.ResourceTheme, domain.ActionRead, deps.Themes.Get)
	guarded("PATCH /api/v1/themes/{id}", domain.ResourceTheme, domain.ActionUpdate, deps.Themes.Update)
	guarded("DELETE /api/v1/themes/{id}", domain.ResourceTheme, domain.ActionDelete, deps.Themes.Delete)

	// Workflow. Transitions are status mutations of the theme; which roles
	// may reach which target state is enforced by the transition table in
	// the service.
	guarded("POST /api/v1/themes/{id}/submit", domain.ResourceTheme, domain.ActionUpdate, deps.Workflow.Submit)
	guarded("POST /api/v1/themes/{id}/approve", domain.ResourceTheme, domain.ActionUpdate, deps.Workflow.Approve)
	guarded("POST /api/v1/themes/{id}/reject", domain.ResourceTheme, domain.ActionUpdate, deps.Workflow.Reject)
	guarded("POST /api/v1/themes/{id}/publish", domain.ResourceTheme, domain.ActionUpdate, deps.Workflow.Publish)
	guarded("POST /api/v1/themes/{id}/archive", domain.ResourceTheme, domain.ActionUpdate, deps.Workflow.Archive)
	guarded("POST /api/v1/themes/{id}/assign-reviewer", domain.ResourceReview, domain.ActionAssign, deps.Workflow.AssignReviewer)
	guarded("GET /api/v1/themes/{id}/history", domain.ResourceTheme, domain.ActionRead, deps.Workflow.History)

	// Annotations.
	guarded("POST /api/v1/themes/{id}/annotations", domain.ResourceAnnotation, domain.ActionCreate, deps.Annotations.Create)
	guarded("GET /api/v1/themes/{id}/annotations", domain.ResourceAnnotation, domain.ActionRead, deps.Annotations.List)
	guarded("GET /api/v1/themes/{id}/annotations/stats", domain.ResourceAnnotation, domain.ActionRead, deps.Annotations.Stats)
	guarded("PATCH /api/v1/annotations/{id}", domain.ResourceAnnotation, domain.ActionUpdate, deps.Annotations.Update)
	guarded("POST /api/v1/annotations/{id}/resolve", domain.ResourceAnnotation, domain.ActionResolve, deps.Annotations.Resolve)
	guarded("POST /api/v1/annotations/{id}/reject", domain.ResourceAnnotation, domain.ActionResolve, deps.Annotations.Reject)
	guarded("DELETE /api/v1/annotations/{id}", domain.ResourceAnnotation, domain.ActionDelete, deps.Annotations.Delete)

	// Versions.
	guarded("POST /api/v1/themes/{id}/versions", domain.ResourceVersion, domain.ActionCreate, deps.Versions.Snapshot)
	guarded("GET /api/v1/themes/{id}/versions", domain.ResourceVersion, domain.ActionRead, deps.Versions.History)
	guarded("POST /api/v1/themes/{id}/restore", domain.ResourceVersion, domain.ActionRestore, deps.Versions.Restore)
	guarded("GET /api/v1/versions/compare", domain.ResourceVersion, domain.ActionRead, deps.Versions.Compare)

	// Notifications.
	guarded("GET /api/v1/notifications", domain.ResourceNotification, domain.ActionRead, deps.Notifications.List)
	guarded("PATCH /api/v1/notifications/{id}/read", domain.ResourceNotification, domain.ActionUpdate, deps.Notifications.MarkRead)

	return mux
}
