// Package history implements the ThemeStatusHistory repository using
// PostgreSQL. The table is append-only: there are no update or delete
// operations, by construction.
package history

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

// Repo provides status history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const historyColumns = `
    id, theme_id, tenant_id, from_status, to_status, changed_by, comment, created_at`

const insertHistorySQL = `
INSERT INTO theme_status_history (
    id, theme_id, tenant_id, from_status, to_status, changed_by, comment, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const listByThemeSQL = `
SELECT` + historyColumns + `
FROM theme_status_history
WHERE theme_id = $1 AND tenant_id = $2
ORDER BY created_at DESC, id DESC`

// Append writes one transition log entry. Called inside the same transaction
// as the status update so the two commit or roll back together.
func (r *Repo) Append(ctx context.Context, h *domain.ThemeStatusHistory) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertHistorySQL,
		h.ID, h.ThemeID, h.TenantID, h.FromStatus, h.ToStatus, h.ChangedBy,
		ptrStringToPgText(h.Comment), time.Now().UTC(),
	)
	if err != nil {
		return postgres.MapError(err, "theme_status_history", h.ID)
	}

	return nil
}

// ListByTheme returns history entries for a theme, newest-first.
// Returns an empty slice (not nil) when the theme has no history.
func (r *Repo) ListByTheme(ctx context.Context, tenantID, themeID uuid.UUID) ([]*domain.ThemeStatusHistory, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByThemeSQL, themeID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list theme_status_history: %w", err)
	}
	defer rows.Close()

	var result []*domain.ThemeStatusHistory
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("list theme_status_history: %w", err)
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list theme_status_history: %w", err)
	}

	if result == nil {
		result = []*domain.ThemeStatusHistory{}
	}

	return result, nil
}

func scanHistory(rows pgx.Rows) (*domain.ThemeStatusHistory, error) {
	var (
		h       domain.ThemeStatusHistory
		comment pgtype.Text
	)

	err := rows.Scan(
		&h.ID, &h.ThemeID, &h.TenantID, &h.FromStatus, &h.ToStatus,
		&h.ChangedBy, &comment, &h.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if comment.Valid {
		h.Comment = &comment.String
	}

	return &h, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
