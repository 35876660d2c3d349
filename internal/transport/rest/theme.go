package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/internal/service/theme"
)

type themeService interface {
	Create(ctx context.Context, input theme.CreateInput) (*domain.Theme, error)
	Get(ctx context.Context, input theme.GetInput) (*domain.Theme, error)
	List(ctx context.Context, input theme.ListInput) (*theme.ListResult, error)
	Update(ctx context.Context, input theme.UpdateInput) (*domain.Theme, error)
	Delete(ctx context.Context, input theme.DeleteInput) error
}

// ThemeHandler serves theme CRUD endpoints.
type ThemeHandler struct {
	themes themeService
	log    *slog.Logger
}

// NewThemeHandler creates a ThemeHandler.
func NewThemeHandler(log *slog.Logger, themes themeService) *ThemeHandler {
	return &ThemeHandler{themes: themes, log: log.With("handler", "theme")}
}

type createThemeRequest struct {
	Title       string              `json:"title"`
	Description *string             `json:"description,omitempty"`
	Difficulty  string              `json:"difficulty,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	Content     domain.ThemeContent `json:"content"`
}

type updateThemeRequest struct {
	Title         *string              `json:"title,omitempty"`
	Description   *string              `json:"description,omitempty"`
	Difficulty    *string              `json:"difficulty,omitempty"`
	Tags          []string             `json:"tags,omitempty"`
	Content       *domain.ThemeContent `json:"content,omitempty"`
	ChangeSummary *string              `json:"change_summary,omitempty"`
}

type themeResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description *string             `json:"description,omitempty"`
	Difficulty  string              `json:"difficulty"`
	Tags        []string            `json:"tags"`
	Content     domain.ThemeContent `json:"content"`
	Status      string              `json:"status"`
	Version     int                 `json:"version"`
	IsPublic    bool                `json:"is_public"`
	CreatedBy   uuid.UUID           `json:"created_by"`
	SubmittedAt *time.Time          `json:"submitted_at,omitempty"`
	ReviewedAt  *time.Time          `json:"reviewed_at,omitempty"`
	PublishedAt *time.Time          `json:"published_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type listThemesResponse struct {
	Themes []themeResponse `json:"themes"`
	Total  int             `json:"total"`
}

func toThemeResponse(t *domain.Theme) themeResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return themeResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Difficulty:  string(t.Difficulty),
		Tags:        tags,
		Content:     t.Content,
		Status:      string(t.Status),
		Version:     t.Version,
		IsPublic:    t.IsPublic,
		CreatedBy:   t.CreatedBy,
		SubmittedAt: t.SubmittedAt,
		ReviewedAt:  t.ReviewedAt,
		PublishedAt: t.PublishedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// Create handles POST /api/v1/themes.
func (h *ThemeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createThemeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.themes.Create(r.Context(), theme.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  domain.Difficulty(req.Difficulty),
		Tags:        req.Tags,
		Content:     req.Content,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toThemeResponse(created))
}

// Get handles GET /api/v1/themes/{id}.
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	th, err := h.themes.Get(r.Context(), theme.GetInput{ThemeID: themeID})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toThemeResponse(th))
}

// List handles GET /api/v1/themes. Filters come from query parameters:
// status, created_by, search, limit, offset.
func (h *ThemeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.ThemeFilter{
		Status: domain.ThemeStatus(q.Get("status")),
		Search: q.Get("search"),
	}
	if s := q.Get("created_by"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "created_by must be a valid UUID")
			return
		}
		filter.CreatedBy = id
	}
	filter.Limit = queryInt(q.Get("limit"))
	filter.Offset = queryInt(q.Get("offset"))

	result, err := h.themes.List(r.Context(), theme.ListInput{Filter: filter})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := listThemesResponse{Themes: make([]themeResponse, 0, len(result.Themes)), Total: result.Total}
	for _, t := range result.Themes {
		resp.Themes = append(resp.Themes, toThemeResponse(t))
	}
	writeData(w, http.StatusOK, resp)
}

// Update handles PATCH /api/v1/themes/{id}.
func (h *ThemeHandler) Update(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateThemeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := theme.UpdateInput{
		ThemeID:       themeID,
		Title:         req.Title,
		Description:   req.Description,
		Tags:          req.Tags,
		Content:       req.Content,
		ChangeSummary: req.ChangeSummary,
	}
	if req.Difficulty != nil {
		d := domain.Difficulty(*req.Difficulty)
		input.Difficulty = &d
	}

	updated, err := h.themes.Update(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toThemeResponse(updated))
}

// Delete handles DELETE /api/v1/themes/{id}.
func (h *ThemeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.themes.Delete(r.Context(), theme.DeleteInput{ThemeID: themeID}); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses a non-negative integer query parameter; empty or invalid
// values fall back to zero and let the service apply its defaults.
func queryInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
