package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/internal/service/annotation"
)

type annotationService interface {
	Create(ctx context.Context, input annotation.CreateInput) (*domain.Annotation, error)
	Update(ctx context.Context, input annotation.UpdateInput) (*domain.Annotation, error)
	Resolve(ctx context.Context, input annotation.ResolveInput) (*domain.Annotation, error)
	Reject(ctx context.Context, input annotation.ResolveInput) (*domain.Annotation, error)
	List(ctx context.Context, input annotation.ListInput) ([]*domain.Annotation, error)
	Stats(ctx context.Context, input annotation.StatsInput) (*domain.AnnotationStats, error)
	Delete(ctx context.Context, input annotation.DeleteInput) error
}

// AnnotationHandler serves annotation endpoints.
type AnnotationHandler struct {
	annotations annotationService
	log         *slog.Logger
}

// NewAnnotationHandler creates an AnnotationHandler.
func NewAnnotationHandler(log *slog.Logger, annotations annotationService) *AnnotationHandler {
	return &AnnotationHandler{annotations: annotations, log: log.With("handler", "annotation")}
}

type createAnnotationRequest struct {
	ThemeVersion int            `json:"theme_version,omitempty"`
	JSONPath     string         `json:"json_path"`
	Type         string         `json:"annotation_type"`
	Content      string         `json:"content"`
	Suggestion   *string        `json:"suggestion,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

type updateAnnotationRequest struct {
	Content  *string        `json:"content,omitempty"`
	Type     *string        `json:"annotation_type,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type annotationResponse struct {
	ID           uuid.UUID      `json:"id"`
	ThemeID      uuid.UUID      `json:"theme_id"`
	ThemeVersion int            `json:"theme_version"`
	AuthorID     uuid.UUID      `json:"author_id"`
	JSONPath     string         `json:"json_path"`
	Type         string         `json:"annotation_type"`
	Content      string         `json:"content"`
	Suggestion   *string        `json:"suggestion,omitempty"`
	Status       string         `json:"status"`
	ResolvedBy   *uuid.UUID     `json:"resolved_by,omitempty"`
	ResolvedAt   *time.Time     `json:"resolved_at,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type annotationStatsResponse struct {
	ThemeID      uuid.UUID      `json:"theme_id"`
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	ByType       map[string]int `json:"by_type"`
	OpenCritical int            `json:"open_critical"`
}

func toAnnotationResponse(a *domain.Annotation) annotationResponse {
	return annotationResponse{
		ID:           a.ID,
		ThemeID:      a.ThemeID,
		ThemeVersion: a.ThemeVersion,
		AuthorID:     a.AuthorID,
		JSONPath:     a.JSONPath,
		Type:         string(a.Type),
		Content:      a.Content,
		Suggestion:   a.Suggestion,
		Status:       string(a.Status),
		ResolvedBy:   a.ResolvedBy,
		ResolvedAt:   a.ResolvedAt,
		Metadata:     a.Metadata,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// Create handles POST /api/v1/themes/{id}/annotations.
func (h *AnnotationHandler) Create(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req createAnnotationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.annotations.Create(r.Context(), annotation.CreateInput{
		ThemeID:      themeID,
		ThemeVersion: req.ThemeVersion,
		JSONPath:     req.JSONPath,
		Type:         domain.AnnotationType(req.Type),
		Content:      req.Content,
		Suggestion:   req.Suggestion,
		Metadata:     req.Metadata,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toAnnotationResponse(a))
}

// Update handles PATCH /api/v1/annotations/{id}.
func (h *AnnotationHandler) Update(w http.ResponseWriter, r *http.Request) {
	annotationID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateAnnotationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := annotation.UpdateInput{
		AnnotationID: annotationID,
		Content:      req.Content,
		Metadata:     req.Metadata,
	}
	if req.Type != nil {
		t := domain.AnnotationType(*req.Type)
		input.Type = &t
	}

	a, err := h.annotations.Update(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toAnnotationResponse(a))
}

// Resolve handles POST /api/v1/annotations/{id}/resolve.
func (h *AnnotationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	annotationID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	a, err := h.annotations.Resolve(r.Context(), annotation.ResolveInput{AnnotationID: annotationID})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toAnnotationResponse(a))
}

// Reject handles POST /api/v1/annotations/{id}/reject.
func (h *AnnotationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	annotationID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	a, err := h.annotations.Reject(r.Context(), annotation.ResolveInput{AnnotationID: annotationID})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toAnnotationResponse(a))
}

// List handles GET /api/v1/themes/{id}/annotations. Filters come from query
// parameters: status, annotation_type, theme_version.
func (h *AnnotationHandler) List(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	q := r.URL.Query()

	annotations, err := h.annotations.List(r.Context(), annotation.ListInput{
		ThemeID: themeID,
		Filter: domain.AnnotationFilter{
			Status:       domain.AnnotationStatus(q.Get("status")),
			Type:         domain.AnnotationType(q.Get("annotation_type")),
			ThemeVersion: queryInt(q.Get("theme_version")),
		},
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := make([]annotationResponse, 0, len(annotations))
	for _, a := range annotations {
		resp = append(resp, toAnnotationResponse(a))
	}
	writeData(w, http.StatusOK, resp)
}

// Stats handles GET /api/v1/themes/{id}/annotations/stats.
func (h *AnnotationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	stats, err := h.annotations.Stats(r.Context(), annotation.StatsInput{ThemeID: themeID})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := annotationStatsResponse{
		ThemeID:      stats.ThemeID,
		Total:        stats.Total,
		ByStatus:     make(map[string]int, len(stats.ByStatus)),
		ByType:       make(map[string]int, len(stats.ByType)),
		OpenCritical: stats.OpenCritical,
	}
	for k, v := range stats.ByStatus {
		resp.ByStatus[string(k)] = v
	}
	for k, v := range stats.ByType {
		resp.ByType[string(k)] = v
	}
	writeData(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/annotations/{id}.
func (h *AnnotationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	annotationID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.annotations.Delete(r.Context(), annotation.DeleteInput{AnnotationID: annotationID}); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
