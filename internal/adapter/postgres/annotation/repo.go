// Package annotation implements the Annotation repository using PostgreSQL.
// Status resolution uses a conditional update (WHERE status = 'open') so a
// second resolve attempt surfaces as zero rows affected.
package annotation

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

// Repo provides annotation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new annotation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const annotationColumns = `
    id, theme_id, theme_version, tenant_id, author_id, json_path, type,
    content, suggestion, status, resolved_by, resolved_at, metadata,
    created_at, updated_at`

const insertAnnotationSQL = `
INSERT INTO annotations (
    id, theme_id, theme_version, tenant_id, author_id, json_path, type,
    content, suggestion, status, metadata, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING` + annotationColumns

const getAnnotationByIDSQL = `
SELECT` + annotationColumns + `
FROM annotations
WHERE id = $1 AND tenant_id = $2`

// setStatusSQL is the conditional resolution update: only open annotations
// match, so the second resolve/reject of the same annotation affects zero
// rows and never overwrites resolved_by/resolved_at.
const setStatusSQL = `
UPDATE annotations
SET status = $3, resolved_by = $4, resolved_at = $5, updated_at = now()
WHERE id = $1 AND tenant_id = $2 AND status = 'open'`

const countOpenCriticalSQL = `
SELECT count(*)
FROM annotations
WHERE theme_id = $1 AND tenant_id = $2 AND status = 'open' AND type IN ('error', 'warning')`

const deleteAnnotationSQL = `DELETE FROM annotations WHERE id = $1 AND tenant_id = $2`

const statsSQL = `
SELECT status, type, count(*)
FROM annotations
WHERE theme_id = $1 AND tenant_id = $2
GROUP BY status, type`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new open annotation.
func (r *Repo) Create(ctx context.Context, a *domain.Annotation) (*domain.Annotation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	metadata, err := marshalMetadata(a.Metadata)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	row := querier.QueryRow(ctx, insertAnnotationSQL,
		a.ID, a.ThemeID, a.ThemeVersion, a.TenantID, a.AuthorID, a.JSONPath,
		a.Type, a.Content, ptrStringToPgText(a.Suggestion),
		domain.AnnotationStatusOpen, metadata, now, now,
	)

	created, err := scanAnnotation(row)
	if err != nil {
		return nil, postgres.MapError(err, "annotation", a.ID)
	}

	return created, nil
}

// Update modifies an annotation's content, type and/or metadata.
// Returns domain.ErrNotFound if the annotation does not exist or belongs to
// another tenant.
func (r *Repo) Update(ctx context.Context, tenantID, annotationID uuid.UUID, params domain.AnnotationUpdateParams) (*domain.Annotation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := psql.Update("annotations").Set("updated_at", time.Now().UTC())
	if params.Content != nil {
		q = q.Set("content", *params.Content)
	}
	if params.Type != nil {
		q = q.Set("type", *params.Type)
	}
	if params.Metadata != nil {
		metadata, err := marshalMetadata(params.Metadata)
		if err != nil {
			return nil, err
		}
		q = q.Set("metadata", metadata)
	}
	q = q.Where(sq.Eq{"id": annotationID, "tenant_id": tenantID})

	updateSQL, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build annotation update: %w", err)
	}

	tag, err := querier.Exec(ctx, updateSQL, args...)
	if err != nil {
		return nil, postgres.MapError(err, "annotation", annotationID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("annotation %s: %w", annotationID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, tenantID, annotationID)
}

// SetStatusIfOpen transitions an open annotation to resolved or rejected and
// stamps the resolver. Returns false (and no error) when the annotation was
// not open — the caller turns that into an "already resolved" error.
func (r *Repo) SetStatusIfOpen(ctx context.Context, tenantID, annotationID uuid.UUID, status domain.AnnotationStatus, resolvedBy uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setStatusSQL,
		annotationID, tenantID, status, resolvedBy, time.Now().UTC())
	if err != nil {
		return false, postgres.MapError(err, "annotation", annotationID)
	}

	return tag.RowsAffected() == 1, nil
}

// Delete removes an annotation permanently.
func (r *Repo) Delete(ctx context.Context, tenantID, annotationID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteAnnotationSQL, annotationID, tenantID)
	if err != nil {
		return postgres.MapError(err, "annotation", annotationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("annotation %s: %w", annotationID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an annotation by primary key, scoped to the tenant.
func (r *Repo) GetByID(ctx context.Context, tenantID, annotationID uuid.UUID) (*domain.Annotation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getAnnotationByIDSQL, annotationID, tenantID)
	a, err := scanAnnotation(row)
	if err != nil {
		return nil, postgres.MapError(err, "annotation", annotationID)
	}

	return a, nil
}

// ListByTheme returns annotations for a theme, newest-first, narrowed by the
// filter. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) ListByTheme(ctx context.Context, tenantID, themeID uuid.UUID, filter domain.AnnotationFilter) ([]*domain.Annotation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Eq{"theme_id": themeID, "tenant_id": tenantID}}
	if filter.Status != "" {
		where = append(where, sq.Eq{"status": filter.Status})
	}
	if filter.Type != "" {
		where = append(where, sq.Eq{"type": filter.Type})
	}
	if filter.ThemeVersion > 0 {
		where = append(where, sq.Eq{"theme_version": filter.ThemeVersion})
	}

	listSQL, args, err := psql.Select(annotationColumns).
		From("annotations").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build annotation list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}
	defer rows.Close()

	annotations, err := scanAnnotations(rows)
	if err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}

	return annotations, nil
}

// CountOpenCritical returns the number of open error/warning annotations for
// a theme. The workflow engine consults this before allowing approval.
func (r *Repo) CountOpenCritical(ctx context.Context, tenantID, themeID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countOpenCriticalSQL, themeID, tenantID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count open critical annotations: %w", err)
	}

	return count, nil
}

// Stats aggregates annotation counts by status and type for a theme.
func (r *Repo) Stats(ctx context.Context, tenantID, themeID uuid.UUID) (*domain.AnnotationStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, statsSQL, themeID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("annotation stats: %w", err)
	}
	defer rows.Close()

	stats := &domain.AnnotationStats{
		ThemeID:  themeID,
		ByStatus: make(map[domain.AnnotationStatus]int),
		ByType:   make(map[domain.AnnotationType]int),
	}

	for rows.Next() {
		var (
			status domain.AnnotationStatus
			typ    domain.AnnotationType
			count  int
		)
		if err := rows.Scan(&status, &typ, &count); err != nil {
			return nil, fmt.Errorf("annotation stats: %w", err)
		}
		stats.Total += count
		stats.ByStatus[status] += count
		stats.ByType[typ] += count
		if status == domain.AnnotationStatusOpen && typ.IsCritical() {
			stats.OpenCritical += count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("annotation stats: %w", err)
	}

	return stats, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanAnnotation(row pgx.Row) (*domain.Annotation, error) {
	var (
		a          domain.Annotation
		suggestion pgtype.Text
		resolvedBy pgtype.UUID
		resolvedAt pgtype.Timestamptz
		metadata   []byte
	)

	err := row.Scan(
		&a.ID, &a.ThemeID, &a.ThemeVersion, &a.TenantID, &a.AuthorID,
		&a.JSONPath, &a.Type, &a.Content, &suggestion, &a.Status,
		&resolvedBy, &resolvedAt, &metadata, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if suggestion.Valid {
		a.Suggestion = &suggestion.String
	}
	if resolvedBy.Valid {
		id := uuid.UUID(resolvedBy.Bytes)
		a.ResolvedBy = &id
	}
	if resolvedAt.Valid {
		t := resolvedAt.Time
		a.ResolvedAt = &t
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &a.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal annotation metadata: %w", err)
		}
	}

	return &a, nil
}

func scanAnnotations(rows pgx.Rows) ([]*domain.Annotation, error) {
	var result []*domain.Annotation
	for rows.Next() {
		a, err := scanAnnotation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Annotation{}
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

// marshalMetadata serializes metadata to JSONB bytes (nil -> NULL).
func marshalMetadata(m map[string]any) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal annotation metadata: %w", err)
	}
	return b, nil
}
