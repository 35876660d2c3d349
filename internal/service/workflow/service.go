// Package workflow implements the theme review workflow engine: guarded
// status transitions along a fixed graph, role checks per target state, the
// critical-annotation gate on approval, and the append-only status history.
//
// Every successful transition is one atomic unit: the conditional status
// update and the history insert commit or roll back together. Concurrency
// control is the conditional update alone (UPDATE ... WHERE status = from);
// the loser of a race observes zero rows affected and fails with a
// TransitionError.
package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/pkg/ctxutil"
)

type themeRepo interface {
	GetByID(ctx context.Context, tenantID, themeID uuid.UUID) (*domain.Theme, error)
	UpdateStatusIf(ctx context.Context, tenantID, themeID uuid.UUID, from, to domain.ThemeStatus, stamps domain.TransitionStamps) (bool, error)
	SetVersion(ctx context.Context, tenantID, themeID uuid.UUID, version int) error
}

type versionRepo interface {
	Create(ctx context.Context, v *domain.ThemeVersion) (*domain.ThemeVersion, error)
}

type annotationRepo interface {
	CountOpenCritical(ctx context.Context, tenantID, themeID uuid.UUID) (int, error)
}

type assignmentRepo interface {
	Create(ctx context.Context, a *domain.ReviewAssignment) (*domain.ReviewAssignment, error)
	CompleteForTheme(ctx context.Context, tenantID, themeID uuid.UUID) (int, error)
	HasActiveForReviewer(ctx context.Context, tenantID, themeID, reviewerID uuid.UUID) (bool, error)
}

type historyRepo interface {
	Append(ctx context.Context, h *domain.ThemeStatusHistory) error
	ListByTheme(ctx context.Context, tenantID, themeID uuid.UUID) ([]*domain.ThemeStatusHistory, error)
}

type userRepo interface {
	GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error)
	ListByRoles(ctx context.Context, tenantID uuid.UUID, roles ...domain.UserRole) ([]*domain.User, error)
}

// notifier delivers in-app notifications fire-and-forget: implementations
// log failures and never return them, so notification problems cannot fail
// a transition.
type notifier interface {
	Send(ctx context.Context, n domain.Notification)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the theme workflow operations.
type Service struct {
	themes      themeRepo
	versions    versionRepo
	annotations annotationRepo
	assignments assignmentRepo
	history     historyRepo
	users       userRepo
	notify      notifier
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new workflow service.
func NewService(
	log *slog.Logger,
	themes themeRepo,
	versions versionRepo,
	annotations annotationRepo,
	assignments assignmentRepo,
	history historyRepo,
	users userRepo,
	notify notifier,
	tx txManager,
) *Service {
	return &Service{
		themes:      themes,
		versions:    versions,
		annotations: annotations,
		assignments: assignments,
		history:     history,
		users:       users,
		notify:      notify,
		tx:          tx,
		log:         log.With("service", "workflow"),
	}
}

// TransitionResult reports a successful workflow transition.
type TransitionResult struct {
	ThemeID        uuid.UUID
	PreviousStatus domain.ThemeStatus
	NewStatus      domain.ThemeStatus
}

// actor is the authenticated caller extracted from the request context.
type actor struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Role     domain.UserRole
}

func actorFromCtx(ctx context.Context) (actor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return actor{}, domain.ErrUnauthorized
	}
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return actor{}, domain.ErrUnauthorized
	}
	roleStr, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return actor{}, domain.ErrUnauthorized
	}
	role := domain.UserRole(roleStr)
	if !role.IsValid() {
		return actor{}, domain.ErrUnauthorized
	}
	return actor{UserID: userID, TenantID: tenantID, Role: role}, nil
}

// applyTransition runs the shared atomic unit of every workflow edge: the
// conditional status update plus the history insert, in one transaction.
// extra, when non-nil, runs inside the same transaction after both writes.
func (s *Service) applyTransition(
	ctx context.Context,
	act actor,
	th *domain.Theme,
	to domain.ThemeStatus,
	comment *string,
	stamps domain.TransitionStamps,
	extra func(txCtx context.Context) error,
) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ok, err := s.themes.UpdateStatusIf(txCtx, act.TenantID, th.ID, th.Status, to, stamps)
		if err != nil {
			return fmt.Errorf("update theme status: %w", err)
		}
		if !ok {
			// Lost the race: the status changed between our read and write.
			return domain.NewTransitionError(th.Status, to)
		}

		if err := s.history.Append(txCtx, &domain.ThemeStatusHistory{
			ID:         uuid.New(),
			ThemeID:    th.ID,
			TenantID:   act.TenantID,
			FromStatus: th.Status,
			ToStatus:   to,
			ChangedBy:  act.UserID,
			Comment:    comment,
		}); err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		if extra != nil {
			return extra(txCtx)
		}
		return nil
	})
}

// notifyAuthor sends one notification to the theme's creator, skipping
// self-notification.
func (s *Service) notifyAuthor(ctx context.Context, act actor, th *domain.Theme, typ domain.NotificationType, message string) {
	if th.CreatedBy == act.UserID {
		return
	}
	s.notify.Send(ctx, domain.Notification{
		ID:          uuid.New(),
		TenantID:    act.TenantID,
		RecipientID: th.CreatedBy,
		Type:        typ,
		ThemeID:     &th.ID,
		Message:     message,
	})
}

// ptr returns a pointer to the given string.
func ptr(s string) *string {
	return &s
}
