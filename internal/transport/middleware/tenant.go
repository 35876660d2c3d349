package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/pkg/ctxutil"
)

type tenantLookup interface {
	GetByID(ctx context.Context, tenantID uuid.UUID) (*domain.Tenant, error)
}

// Tenant resolves and validates the caller's tenant. It requires an
// authenticated identity (Auth must run first), verifies the tenant exists
// and is active, and rejects the request otherwise. Handlers behind this
// middleware can rely on the tenant id in the context pointing at a live
// tenant.
func Tenant(tenants tenantLookup) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tenantID, ok := ctxutil.TenantIDFromCtx(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			tenant, err := tenants.GetByID(r.Context(), tenantID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					http.Error(w, "unknown tenant", http.StatusForbidden)
					return
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			if !tenant.IsActive {
				http.Error(w, "tenant is deactivated", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
