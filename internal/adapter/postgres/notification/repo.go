// Package notification implements the Notification repository using PostgreSQL.
package notification

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

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const notificationColumns = `
    id, tenant_id, recipient_id, type, theme_id, message, is_read, created_at`

const insertNotificationSQL = `
INSERT INTO notifications (
    id, tenant_id, recipient_id, type, theme_id, message, is_read, created_at
) VALUES ($1, $2, $3, $4, $5, $6, false, $7)`

const listByRecipientSQL = `
SELECT` + notificationColumns + `
FROM notifications
WHERE recipient_id = $1 AND tenant_id = $2 AND (NOT $3 OR is_read = false)
ORDER BY created_at DESC
LIMIT $4`

const markReadSQL = `
UPDATE notifications SET is_read = true
WHERE id = $1 AND tenant_id = $2 AND recipient_id = $3`

// Create inserts one notification row.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertNotificationSQL,
		n.ID, n.TenantID, n.RecipientID, n.Type, ptrUUIDToPgUUID(n.ThemeID),
		n.Message, time.Now().UTC(),
	)
	if err != nil {
		return postgres.MapError(err, "notification", n.ID)
	}

	return nil
}

// ListByRecipient returns a user's notifications, newest-first.
func (r *Repo) ListByRecipient(ctx context.Context, tenantID, recipientID uuid.UUID, unreadOnly bool, limit int) ([]*domain.Notification, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if limit <= 0 {
		limit = 50
	}

	rows, err := querier.Query(ctx, listByRecipientSQL, recipientID, tenantID, unreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var result []*domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("list notifications: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	if result == nil {
		result = []*domain.Notification{}
	}

	return result, nil
}

// MarkRead flags a notification as read. Scoped to the recipient so users
// cannot touch each other's notifications.
func (r *Repo) MarkRead(ctx context.Context, tenantID, recipientID, notificationID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markReadSQL, notificationID, tenantID, recipientID)
	if err != nil {
		return postgres.MapError(err, "notification", notificationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", notificationID, domain.ErrNotFound)
	}

	return nil
}

func scanNotification(rows pgx.Rows) (*domain.Notification, error) {
	var (
		n       domain.Notification
		themeID pgtype.UUID
	)

	err := rows.Scan(
		&n.ID, &n.TenantID, &n.RecipientID, &n.Type, &themeID,
		&n.Message, &n.IsRead, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if themeID.Valid {
		id := uuid.UUID(themeID.Bytes)
		n.ThemeID = &id
	}

	return &n, nil
}

// ptrUUIDToPgUUID converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func ptrUUIDToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
