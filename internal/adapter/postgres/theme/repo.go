// Package theme implements the Theme repository using PostgreSQL.
// It owns the conditional status update that serializes concurrent workflow
// transitions: UPDATE ... WHERE status = expected, in the same transaction
// as the history insert.
package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/scolaria/scolaria-backend/internal/adapter/postgres"
	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Repo provides theme persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new theme repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql builds squirrel queries with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const themeColumns = `
    id, tenant_id, title, description, difficulty, tags, content, status,
    version, is_public, created_by, submitted_at, submitted_by, reviewed_at,
    reviewed_by, published_at, published_by, created_at, updated_at`

const getThemeByIDSQL = `
SELECT` + themeColumns + `
FROM themes
WHERE id = $1 AND tenant_id = $2`

const insertThemeSQL = `
INSERT INTO themes (
    id, tenant_id, title, description, difficulty, tags, content, status,
    version, created_by, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING` + themeColumns

const setThemeVersionSQL = `
UPDATE themes SET version = $3, updated_at = now()
WHERE id = $1 AND tenant_id = $2`

const deleteThemeSQL = `DELETE FROM themes WHERE id = $1 AND tenant_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a theme by primary key, scoped to the tenant.
// Returns domain.ErrNotFound if the theme does not exist or belongs to
// another tenant.
func (r *Repo) GetByID(ctx context.Context, tenantID, themeID uuid.UUID) (*domain.Theme, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getThemeByIDSQL, themeID, tenantID)
	t, err := scanTheme(row)
	if err != nil {
		return nil, postgres.MapError(err, "theme", themeID)
	}

	return t, nil
}

// List returns themes for a tenant ordered by updated_at DESC, with the
// total count before pagination. Returns an empty slice (not nil) when
// nothing matches.
func (r *Repo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ThemeFilter) ([]*domain.Theme, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Eq{"tenant_id": tenantID}}
	if filter.Status != "" {
		where = append(where, sq.Eq{"status": filter.Status})
	}
	if filter.CreatedBy != uuid.Nil {
		where = append(where, sq.Eq{"created_by": filter.CreatedBy})
	}
	if filter.Search != "" {
		where = append(where, sq.ILike{"title": "%" + filter.Search + "%"})
	}

	countSQL, countArgs, err := psql.Select("count(*)").From("themes").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count themes: %w", err)
	}

	q := psql.Select(themeColumns).From("themes").Where(where).OrderBy("updated_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	listSQL, listArgs, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	themes, err := scanThemes(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list themes: %w", err)
	}

	return themes, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new draft theme and returns the persisted domain.Theme.
func (r *Repo) Create(ctx context.Context, theme *domain.Theme) (*domain.Theme, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	content, err := json.Marshal(theme.Content)
	if err != nil {
		return nil, fmt.Errorf("marshal theme content: %w", err)
	}

	now := time.Now().UTC()
	row := querier.QueryRow(ctx, insertThemeSQL,
		theme.ID, theme.TenantID, theme.Title, ptrStringToPgText(theme.Description),
		theme.Difficulty, theme.Tags, content, theme.Status, theme.Version,
		theme.CreatedBy, now, now,
	)

	created, err := scanTheme(row)
	if err != nil {
		return nil, postgres.MapError(err, "theme", theme.ID)
	}

	return created, nil
}

// Update modifies the editable fields of a theme and bumps updated_at.
// Returns domain.ErrNotFound if the theme does not exist or belongs to
// another tenant.
func (r *Repo) Update(ctx context.Context, tenantID, themeID uuid.UUID, params domain.ThemeUpdateParams) (*domain.Theme, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := psql.Update("themes").Set("updated_at", time.Now().UTC())
	if params.Title != nil {
		q = q.Set("title", *params.Title)
	}
	if params.Description != nil {
		q = q.Set("description", ptrStringToPgText(params.Description))
	}
	if params.Difficulty != nil {
		q = q.Set("difficulty", *params.Difficulty)
	}
	if params.Tags != nil {
		q = q.Set("tags", params.Tags)
	}
	if params.Content != nil {
		content, err := json.Marshal(params.Content)
		if err != nil {
			return nil, fmt.Errorf("marshal theme content: %w", err)
		}
		q = q.Set("content", content)
	}
	q = q.Where(sq.Eq{"id": themeID, "tenant_id": tenantID})

	updateSQL, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	tag, err := querier.Exec(ctx, updateSQL, args...)
	if err != nil {
		return nil, postgres.MapError(err, "theme", themeID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("theme %s: %w", themeID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, tenantID, themeID)
}

// UpdateStatusIf performs the compare-and-swap status transition: the row is
// updated only if its current status still equals from. Returns false (and
// no error) when zero rows matched — either the theme is gone or another
// request transitioned it first.
func (r *Repo) UpdateStatusIf(ctx context.Context, tenantID, themeID uuid.UUID, from, to domain.ThemeStatus, stamps domain.TransitionStamps) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := psql.Update("themes").
		Set("status", to).
		Set("updated_at", time.Now().UTC())
	if stamps.SubmittedAt != nil {
		q = q.Set("submitted_at", *stamps.SubmittedAt)
	}
	if stamps.SubmittedBy != nil {
		q = q.Set("submitted_by", *stamps.SubmittedBy)
	}
	if stamps.ReviewedAt != nil {
		q = q.Set("reviewed_at", *stamps.ReviewedAt)
	}
	if stamps.ReviewedBy != nil {
		q = q.Set("reviewed_by", *stamps.ReviewedBy)
	}
	if stamps.PublishedAt != nil {
		q = q.Set("published_at", *stamps.PublishedAt)
	}
	if stamps.PublishedBy != nil {
		q = q.Set("published_by", *stamps.PublishedBy)
	}
	if stamps.IsPublic != nil {
		q = q.Set("is_public", *stamps.IsPublic)
	}
	q = q.Where(sq.Eq{"id": themeID, "tenant_id": tenantID, "status": from})

	updateSQL, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build status update: %w", err)
	}

	tag, err := querier.Exec(ctx, updateSQL, args...)
	if err != nil {
		return false, postgres.MapError(err, "theme", themeID)
	}

	return tag.RowsAffected() == 1, nil
}

// SetVersion updates the theme's version counter after a snapshot was taken.
func (r *Repo) SetVersion(ctx context.Context, tenantID, themeID uuid.UUID, version int) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setThemeVersionSQL, themeID, tenantID, version)
	if err != nil {
		return postgres.MapError(err, "theme", themeID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("theme %s: %w", themeID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a theme. CASCADE deletes versions, annotations, assignments
// and history rows. Returns domain.ErrNotFound if the theme does not exist
// or belongs to another tenant.
func (r *Repo) Delete(ctx context.Context, tenantID, themeID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteThemeSQL, themeID, tenantID)
	if err != nil {
		return postgres.MapError(err, "theme", themeID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("theme %s: %w", themeID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanTheme scans a single row (pgx.Row or pgx.Rows) into a domain.Theme.
func scanTheme(row pgx.Row) (*domain.Theme, error) {
	var (
		t           domain.Theme
		description pgtype.Text
		content     []byte
		submittedAt pgtype.Timestamptz
		submittedBy pgtype.UUID
		reviewedAt  pgtype.Timestamptz
		reviewedBy  pgtype.UUID
		publishedAt pgtype.Timestamptz
		publishedBy pgtype.UUID
	)

	err := row.Scan(
		&t.ID, &t.TenantID, &t.Title, &description, &t.Difficulty, &t.Tags,
		&content, &t.Status, &t.Version, &t.IsPublic, &t.CreatedBy,
		&submittedAt, &submittedBy, &reviewedAt, &reviewedBy,
		&publishedAt, &publishedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(content, &t.Content); err != nil {
		return nil, fmt.Errorf("unmarshal theme content: %w", err)
	}

	if description.Valid {
		t.Description = &description.String
	}
	t.SubmittedAt = pgTimestampToPtr(submittedAt)
	t.SubmittedBy = pgUUIDToPtr(submittedBy)
	t.ReviewedAt = pgTimestampToPtr(reviewedAt)
	t.ReviewedBy = pgUUIDToPtr(reviewedBy)
	t.PublishedAt = pgTimestampToPtr(publishedAt)
	t.PublishedBy = pgUUIDToPtr(publishedBy)

	return &t, nil
}

// scanThemes scans multiple rows into a []*domain.Theme.
func scanThemes(rows pgx.Rows) ([]*domain.Theme, error) {
	var result []*domain.Theme
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Theme{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// pgTimestampToPtr converts a pgtype.Timestamptz to *time.Time (NULL -> nil).
func pgTimestampToPtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

// pgUUIDToPtr converts a pgtype.UUID to *uuid.UUID (NULL -> nil).
func pgUUIDToPtr(u pgtype.UUID) *uuid.UUID {
	if !u.Valid {
		return nil
	}
	id := uuid.UUID(u.Bytes)
	return &id
}
