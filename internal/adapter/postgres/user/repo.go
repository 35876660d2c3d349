// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/scolaria/scolaria-backend/internal/adapter/postgres"
	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `
    id, tenant_id, email, name, password_hash, role, is_active, created_at, updated_at`

const insertUserSQL = `
INSERT INTO users (id, tenant_id, email, name, password_hash, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, true, $7, $8)
RETURNING` + userColumns

const getUserByIDSQL = `
SELECT` + userColumns + `
FROM users
WHERE id = $1 AND tenant_id = $2`

const getUserByEmailSQL = `
SELECT` + userColumns + `
FROM users
WHERE tenant_id = $1 AND lower(email) = lower($2)`

const listByRolesSQL = `
SELECT` + userColumns + `
FROM users
WHERE tenant_id = $1 AND role = ANY($2) AND is_active = true
ORDER BY name`

// Create inserts a new user. Returns domain.ErrAlreadyExists when the email
// is taken within the tenant.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	row := querier.QueryRow(ctx, insertUserSQL,
		u.ID, u.TenantID, u.Email, u.Name, u.PasswordHash, u.Role, now, now)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return created, nil
}

// GetByID returns a user by primary key, scoped to the tenant.
func (r *Repo) GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getUserByIDSQL, userID, tenantID))
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return u, nil
}

// GetByEmail returns a user by email within a tenant (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getUserByEmailSQL, tenantID, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// ListByRoles returns active users in a tenant holding any of the given
// roles. Used to fan out reviewer notifications on submission.
func (r *Repo) ListByRoles(ctx context.Context, tenantID uuid.UUID, roles ...domain.UserRole) ([]*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	roleStrings := make([]string, len(roles))
	for i, role := range roles {
		roleStrings[i] = string(role)
	}

	rows, err := querier.Query(ctx, listByRolesSQL, tenantID, roleStrings)
	if err != nil {
		return nil, fmt.Errorf("list users by roles: %w", err)
	}
	defer rows.Close()

	var result []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("list users by roles: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users by roles: %w", err)
	}

	if result == nil {
		result = []*domain.User{}
	}

	return result, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.TenantID, &u.Email, &u.Name, &u.PasswordHash, &u.Role,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
