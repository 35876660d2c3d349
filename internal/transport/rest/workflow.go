package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/internal/service/workflow"
)

type workflowService interface {
	SubmitForReview(ctx context.Context, input workflow.SubmitInput) (*workflow.TransitionResult, error)
	Approve(ctx context.Context, input workflow.ApproveInput) (*workflow.TransitionResult, error)
	Reject(ctx context.Context, input workflow.RejectInput) (*workflow.TransitionResult, error)
	Publish(ctx context.Context, input workflow.PublishInput) (*workflow.TransitionResult, error)
	Archive(ctx context.Context, input workflow.ArchiveInput) (*workflow.TransitionResult, error)
	AssignReviewer(ctx context.Context, input workflow.AssignReviewerInput) (*domain.ReviewAssignment, error)
	History(ctx context.Context, input workflow.HistoryInput) ([]*domain.ThemeStatusHistory, error)
}

// WorkflowHandler serves the theme workflow endpoints.
type WorkflowHandler struct {
	workflow workflowService
	log      *slog.Logger
}

// NewWorkflowHandler creates a WorkflowHandler.
func NewWorkflowHandler(log *slog.Logger, wf workflowService) *WorkflowHandler {
	return &WorkflowHandler{workflow: wf, log: log.With("handler", "workflow")}
}

type transitionRequest struct {
	Comment *string `json:"comment,omitempty"`
}

type rejectRequest struct {
	Comment string `json:"comment"`
}

type archiveRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type assignReviewerRequest struct {
	ReviewerID uuid.UUID  `json:"reviewer_id"`
	Priority   string     `json:"priority,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}

type transitionResponse struct {
	ThemeID        uuid.UUID `json:"theme_id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
}

type assignmentResponse struct {
	ID           uuid.UUID  `json:"id"`
	ThemeID      uuid.UUID  `json:"theme_id"`
	ReviewerID   uuid.UUID  `json:"reviewer_id"`
	AssignedBy   uuid.UUID  `json:"assigned_by"`
	ReviewerRole string     `json:"reviewer_role"`
	Priority     string     `json:"priority"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

type historyEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	ThemeID    uuid.UUID `json:"theme_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  uuid.UUID `json:"changed_by"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toTransitionResponse(res *workflow.TransitionResult) transitionResponse {
	return transitionResponse{
		ThemeID:        res.ThemeID,
		PreviousStatus: string(res.PreviousStatus),
		NewStatus:      string(res.NewStatus),
	}
}

// Submit handles POST /api/v1/themes/{id}/submit.
func (h *WorkflowHandler) Submit(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	req := transitionRequest{}
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	res, err := h.workflow.SubmitForReview(r.Context(), workflow.SubmitInput{ThemeID: themeID, Comment: req.Comment})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toTransitionResponse(res))
}

// Approve handles POST /api/v1/themes/{id}/approve.
func (h *WorkflowHandler) Approve(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	req := transitionRequest{}
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	res, err := h.workflow.Approve(r.Context(), workflow.ApproveInput{ThemeID: themeID, Comment: req.Comment})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toTransitionResponse(res))
}

// Reject handles POST /api/v1/themes/{id}/reject. A comment is mandatory.
func (h *WorkflowHandler) Reject(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req rejectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.workflow.Reject(r.Context(), workflow.RejectInput{ThemeID: themeID, Comment: req.Comment})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toTransitionResponse(res))
}

// Publish handles POST /api/v1/themes/{id}/publish.
func (h *WorkflowHandler) Publish(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	req := transitionRequest{}
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	res, err := h.workflow.Publish(r.Context(), workflow.PublishInput{ThemeID: themeID, Comment: req.Comment})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toTransitionResponse(res))
}

// Archive handles POST /api/v1/themes/{id}/archive.
func (h *WorkflowHandler) Archive(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	req := archiveRequest{}
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	res, err := h.workflow.Archive(r.Context(), workflow.ArchiveInput{ThemeID: themeID, Reason: req.Reason})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toTransitionResponse(res))
}

// AssignReviewer handles POST /api/v1/themes/{id}/assign-reviewer.
func (h *WorkflowHandler) AssignReviewer(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req assignReviewerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.workflow.AssignReviewer(r.Context(), workflow.AssignReviewerInput{
		ThemeID:    themeID,
		ReviewerID: req.ReviewerID,
		Priority:   domain.AssignmentPriority(req.Priority),
		DueDate:    req.DueDate,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, assignmentResponse{
		ID:           a.ID,
		ThemeID:      a.ThemeID,
		ReviewerID:   a.ReviewerID,
		AssignedBy:   a.AssignedBy,
		ReviewerRole: string(a.ReviewerRole),
		Priority:     string(a.Priority),
		DueDate:      a.DueDate,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
	})
}

// History handles GET /api/v1/themes/{id}/history.
func (h *WorkflowHandler) History(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	entries, err := h.workflow.History(r.Context(), workflow.HistoryInput{ThemeID: themeID})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, historyEntryResponse{
			ID:         e.ID,
			ThemeID:    e.ThemeID,
			FromStatus: string(e.FromStatus),
			ToStatus:   string(e.ToStatus),
			ChangedBy:  e.ChangedBy,
			Comment:    e.Comment,
			CreatedAt:  e.CreatedAt,
		})
	}
	writeData(w, http.StatusOK, resp)
}
