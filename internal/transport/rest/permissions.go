package rest

import (
	"net/http"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/internal/transport/middleware"
	"github.com/scolaria/scolaria-backend/pkg/ctxutil"
)

// permit gates a route on the static role permission table before the
// handler runs. Scope rules (own content vs. anyone's) and workflow-state
// checks stay in the services; this answers only "may this role invoke the
// operation at all".
func permit(resource domain.Resource, action domain.Action) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := ctxutil.RoleFromCtx(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
				return
			}
			if !domain.Can(domain.UserRole(role), resource, action) {
				writeError(w, http.StatusForbidden, "forbidden", "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
