// Package tenant implements the Tenant repository using PostgreSQL.
package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/scolaria/scolaria-backend/internal/adapter/postgres"
	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Repo provides tenant persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tenant repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const tenantColumns = `id, name, slug, is_active, created_at, updated_at`

const insertTenantSQL = `
INSERT INTO tenants (id, name, slug, is_active, created_at, updated_at)
VALUES ($1, $2, $3, true, $4, $5)
RETURNING ` + tenantColumns

const getTenantByIDSQL = `
SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`

const getTenantBySlugSQL = `
SELECT ` + tenantColumns + ` FROM tenants WHERE slug = $1`

// Create inserts a new tenant. Returns domain.ErrAlreadyExists when the slug
// is taken.
func (r *Repo) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	row := querier.QueryRow(ctx, insertTenantSQL, t.ID, t.Name, t.Slug, now, now)

	created, err := scanTenant(row)
	if err != nil {
		return nil, postgres.MapError(err, "tenant", t.ID)
	}

	return created, nil
}

// GetByID returns a tenant by primary key.
func (r *Repo) GetByID(ctx context.Context, tenantID uuid.UUID) (*domain.Tenant, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTenant(querier.QueryRow(ctx, getTenantByIDSQL, tenantID))
	if err != nil {
		return nil, postgres.MapError(err, "tenant", tenantID)
	}

	return t, nil
}

// GetBySlug returns a tenant by its URL slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTenant(querier.QueryRow(ctx, getTenantBySlugSQL, slug))
	if err != nil {
		return nil, postgres.MapError(err, "tenant", uuid.Nil)
	}

	return t, nil
}

func scanTenant(row pgx.Row) (*domain.Tenant, error) {
	var t domain.Tenant
	err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
