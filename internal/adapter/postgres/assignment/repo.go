// Package assignment implements the ReviewAssignment repository using PostgreSQL.
package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/scolaria/scolaria-backend/internal/adapter/postgres"
	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Repo provides review assignment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assignment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const assignmentColumns = `
    id, theme_id, tenant_id, reviewer_id, assigned_by, reviewer_role,
    priority, due_date, status, created_at, updated_at`

const insertAssignmentSQL = `
INSERT INTO review_assignments (
    id, theme_id, tenant_id, reviewer_id, assigned_by, reviewer_role,
    priority, due_date, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING` + assignmentColumns

const listByThemeSQL = `
SELECT` + assignmentColumns + `
FROM review_assignments
WHERE theme_id = $1 AND tenant_id = $2
ORDER BY created_at DESC`

const listByReviewerSQL = `
SELECT` + assignmentColumns + `
FROM review_assignments
WHERE reviewer_id = $1 AND tenant_id = $2 AND status <> 'completed'
ORDER BY priority DESC, created_at ASC`

// completeForThemeSQL closes every non-completed assignment for a theme,
// called when a reviewer approves or rejects it.
const completeForThemeSQL = `
UPDATE review_assignments
SET status = 'completed', updated_at = now()
WHERE theme_id = $1 AND tenant_id = $2 AND status <> 'completed'`

const hasActiveForReviewerSQL = `
SELECT count(*)
FROM review_assignments
WHERE theme_id = $1 AND tenant_id = $2 AND reviewer_id = $3 AND status <> 'completed'`

// Create inserts a new pending assignment.
func (r *Repo) Create(ctx context.Context, a *domain.ReviewAssignment) (*domain.ReviewAssignment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	row := querier.QueryRow(ctx, insertAssignmentSQL,
		a.ID, a.ThemeID, a.TenantID, a.ReviewerID, a.AssignedBy,
		a.ReviewerRole, a.Priority, ptrTimeToPgTimestamp(a.DueDate),
		domain.AssignmentStatusPending, now, now,
	)

	created, err := scanAssignment(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_assignment", a.ID)
	}

	return created, nil
}

// ListByTheme returns assignments for a theme, newest-first.
func (r *Repo) ListByTheme(ctx context.Context, tenantID, themeID uuid.UUID) ([]*domain.ReviewAssignment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByThemeSQL, themeID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list review_assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// ListByReviewer returns a reviewer's open queue ordered by priority.
func (r *Repo) ListByReviewer(ctx context.Context, tenantID, reviewerID uuid.UUID) ([]*domain.ReviewAssignment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByReviewerSQL, reviewerID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list review_assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// CompleteForTheme marks all open assignments for a theme completed.
// Returns the number of assignments closed; zero is not an error.
func (r *Repo) CompleteForTheme(ctx context.Context, tenantID, themeID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, completeForThemeSQL, themeID, tenantID)
	if err != nil {
		return 0, fmt.Errorf("complete review_assignments: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// HasActiveForReviewer reports whether the reviewer already has an open
// assignment for the theme (duplicate-assignment guard).
func (r *Repo) HasActiveForReviewer(ctx context.Context, tenantID, themeID, reviewerID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, hasActiveForReviewerSQL, themeID, tenantID, reviewerID).Scan(&count); err != nil {
		return false, fmt.Errorf("check active assignment: %w", err)
	}

	return count > 0, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanAssignment(row pgx.Row) (*domain.ReviewAssignment, error) {
	var (
		a       domain.ReviewAssignment
		dueDate pgtype.Timestamptz
	)

	err := row.Scan(
		&a.ID, &a.ThemeID, &a.TenantID, &a.ReviewerID, &a.AssignedBy,
		&a.ReviewerRole, &a.Priority, &dueDate, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if dueDate.Valid {
		t := dueDate.Time
		a.DueDate = &t
	}

	return &a, nil
}

func scanAssignments(rows pgx.Rows) ([]*domain.ReviewAssignment, error) {
	var result []*domain.ReviewAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.ReviewAssignment{}
	}

	return result, nil
}

// ptrTimeToPgTimestamp converts a *time.Time to pgtype.Timestamptz (nil -> NULL).
func ptrTimeToPgTimestamp(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}
