package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/internal/service/tenant"
	"github.com/scolaria/scolaria-backend/pkg/ctxutil"
)

type tenantService interface {
	Onboard(ctx context.Context, input tenant.OnboardInput) (*tenant.OnboardResult, error)
	Get(ctx context.Context, input tenant.GetInput) (*domain.Tenant, error)
}

// TenantHandler serves tenant endpoints.
type TenantHandler struct {
	tenants tenantService
	log     *slog.Logger
}

// NewTenantHandler creates a TenantHandler.
func NewTenantHandler(log *slog.Logger, tenants tenantService) *TenantHandler {
	return &TenantHandler{tenants: tenants, log: log.With("handler", "tenant")}
}

type onboardRequest struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	AdminEmail    string `json:"admin_email"`
	AdminName     string `json:"admin_name"`
	AdminPassword string `json:"admin_password"`
}

type tenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type onboardResponse struct {
	Tenant tenantResponse `json:"tenant"`
	Admin  userResponse   `json:"admin"`
}

func toTenantResponse(t *domain.Tenant) tenantResponse {
	return tenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
	}
}

// Onboard handles POST /api/v1/tenants. Creates the tenant and its first
// direction account in one transaction.
func (h *TenantHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req onboardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.tenants.Onboard(r.Context(), tenant.OnboardInput{
		Name:          req.Name,
		Slug:          req.Slug,
		AdminEmail:    req.AdminEmail,
		AdminName:     req.AdminName,
		AdminPassword: req.AdminPassword,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, onboardResponse{
		Tenant: toTenantResponse(result.Tenant),
		Admin: userResponse{
			ID:       result.Admin.ID,
			TenantID: result.Admin.TenantID,
			Email:    result.Admin.Email,
			Name:     result.Admin.Name,
			Role:     string(result.Admin.Role),
		},
	})
}

// Current handles GET /api/v1/tenants/current: the caller's own tenant.
func (h *TenantHandler) Current(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := ctxutil.TenantIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	t, err := h.tenants.Get(r.Context(), tenant.GetInput{TenantID: tenantID})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toTenantResponse(t))
}
