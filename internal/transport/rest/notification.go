package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/internal/service/notification"
)

type notificationService interface {
	List(ctx context.Context, input notification.ListInput) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID) error
}

// NotificationHandler serves in-app notification endpoints.
type NotificationHandler struct {
	notifications notificationService
	log           *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(log *slog.Logger, notifications notificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, log: log.With("handler", "notification")}
}

type notificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	ThemeID   *uuid.UUID `json:"theme_id,omitempty"`
	Message   string     `json:"message"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
}

// List handles GET /api/v1/notifications. Query parameters: unread_only,
// limit.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	notifications, err := h.notifications.List(r.Context(), notification.ListInput{
		UnreadOnly: q.Get("unread_only") == "true",
		Limit:      queryInt(q.Get("limit")),
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, notificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			ThemeID:   n.ThemeID,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	writeData(w, http.StatusOK, resp)
}

// MarkRead handles PATCH /api/v1/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.notifications.MarkRead(r.Context(), notificationID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
