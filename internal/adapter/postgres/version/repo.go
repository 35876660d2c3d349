// Package version implements the ThemeVersion repository using PostgreSQL.
// Snapshots are append-only: version numbers are allocated with an
// insert-select on MAX(version)+1 and rows are never updated afterwards.
package version

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

// Repo provides theme version persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new version repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const versionColumns = `
    id, theme_id, tenant_id, version, title, status, difficulty, tags,
    content, change_summary, is_milestone, created_by, created_at`

// insertVersionSQL allocates the next version number atomically with the
// insert itself, so two snapshots in the same transaction still get distinct
// consecutive numbers.
const insertVersionSQL = `
INSERT INTO theme_versions (
    id, theme_id, tenant_id, version, title, status, difficulty, tags,
    content, change_summary, is_milestone, created_by, created_at
)
SELECT $1, $2, $3, COALESCE(MAX(v.version), 0) + 1, $4, $5, $6, $7, $8, $9, $10, $11, $12
FROM theme_versions v
WHERE v.theme_id = $2
RETURNING` + versionColumns

const getVersionByIDSQL = `
SELECT` + versionColumns + `
FROM theme_versions
WHERE id = $1 AND tenant_id = $2`

const getVersionByNumberSQL = `
SELECT` + versionColumns + `
FROM theme_versions
WHERE theme_id = $1 AND tenant_id = $2 AND version = $3`

// pruneVersionsSQL removes non-milestone snapshots beyond the newest keep-N
// per theme. Milestones are always retained.
const pruneVersionsSQL = `
DELETE FROM theme_versions
WHERE is_milestone = false
  AND id IN (
      SELECT id FROM (
          SELECT id, row_number() OVER (PARTITION BY theme_id ORDER BY version DESC) AS rn
          FROM theme_versions
      ) ranked
      WHERE ranked.rn > $1
  )`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a new immutable snapshot. The version number is always
// MAX(existing)+1 for the theme; existing rows are never overwritten.
func (r *Repo) Create(ctx context.Context, v *domain.ThemeVersion) (*domain.ThemeVersion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	content, err := json.Marshal(v.Content)
	if err != nil {
		return nil, fmt.Errorf("marshal version content: %w", err)
	}

	row := querier.QueryRow(ctx, insertVersionSQL,
		v.ID, v.ThemeID, v.TenantID, v.Title, v.Status, v.Difficulty, v.Tags,
		content, ptrStringToPgText(v.ChangeSummary), v.IsMilestone,
		v.CreatedBy, time.Now().UTC(),
	)

	created, err := scanVersion(row)
	if err != nil {
		return nil, postgres.MapError(err, "theme_version", v.ID)
	}

	return created, nil
}

// Prune deletes non-milestone snapshots beyond the newest keep per theme,
// across all tenants. Returns the number of deleted rows.
func (r *Repo) Prune(ctx context.Context, keep int) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, pruneVersionsSQL, keep)
	if err != nil {
		return 0, fmt.Errorf("prune theme_versions: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a snapshot by primary key, scoped to the tenant.
func (r *Repo) GetByID(ctx context.Context, tenantID, versionID uuid.UUID) (*domain.ThemeVersion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getVersionByIDSQL, versionID, tenantID)
	v, err := scanVersion(row)
	if err != nil {
		return nil, postgres.MapError(err, "theme_version", versionID)
	}

	return v, nil
}

// GetByNumber returns the snapshot with the given version number for a theme.
func (r *Repo) GetByNumber(ctx context.Context, tenantID, themeID uuid.UUID, number int) (*domain.ThemeVersion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getVersionByNumberSQL, themeID, tenantID, number)
	v, err := scanVersion(row)
	if err != nil {
		return nil, postgres.MapError(err, "theme_version", themeID)
	}

	return v, nil
}

// List returns snapshots for a theme, newest-first. milestonesOnly filters to
// milestone snapshots; limit 0 means no limit. Returns an empty slice (not
// nil) when the theme has no versions.
func (r *Repo) List(ctx context.Context, tenantID, themeID uuid.UUID, limit int, milestonesOnly bool) ([]*domain.ThemeVersion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := psql.Select(versionColumns).
		From("theme_versions").
		Where(sq.Eq{"theme_id": themeID, "tenant_id": tenantID}).
		OrderBy("version DESC")
	if milestonesOnly {
		q = q.Where(sq.Eq{"is_milestone": true})
	}
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	listSQL, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build version list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("list theme_versions: %w", err)
	}
	defer rows.Close()

	versions, err := scanVersions(rows)
	if err != nil {
		return nil, fmt.Errorf("list theme_versions: %w", err)
	}

	return versions, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanVersion(row pgx.Row) (*domain.ThemeVersion, error) {
	var (
		v             domain.ThemeVersion
		content       []byte
		changeSummary pgtype.Text
	)

	err := row.Scan(
		&v.ID, &v.ThemeID, &v.TenantID, &v.Version, &v.Title, &v.Status,
		&v.Difficulty, &v.Tags, &content, &changeSummary, &v.IsMilestone,
		&v.CreatedBy, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(content, &v.Content); err != nil {
		return nil, fmt.Errorf("unmarshal version content: %w", err)
	}

	if changeSummary.Valid {
		v.ChangeSummary = &changeSummary.String
	}

	return &v, nil
}

func scanVersions(rows pgx.Rows) ([]*domain.ThemeVersion, error) {
	var result []*domain.ThemeVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.ThemeVersion{}
	}

	return result, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
