package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
	"github.com/scolaria/scolaria-backend/internal/service/version"
)

type versionService interface {
	Snapshot(ctx context.Context, input version.SnapshotInput) (*domain.ThemeVersion, error)
	Restore(ctx context.Context, input version.RestoreInput) (*domain.ThemeVersion, error)
	History(ctx context.Context, input version.HistoryInput) ([]*domain.ThemeVersion, error)
	Compare(ctx context.Context, input version.CompareInput) (*domain.VersionDiff, error)
}

// VersionHandler serves theme version endpoints.
type VersionHandler struct {
	versions versionService
	log      *slog.Logger
}

// NewVersionHandler creates a VersionHandler.
func NewVersionHandler(log *slog.Logger, versions versionService) *VersionHandler {
	return &VersionHandler{versions: versions, log: log.With("handler", "version")}
}

type snapshotRequest struct {
	ChangeSummary *string `json:"change_summary,omitempty"`
	IsMilestone   bool    `json:"is_milestone,omitempty"`
}

type restoreRequest struct {
	VersionID uuid.UUID `json:"version_id"`
}

type versionResponse struct {
	ID            uuid.UUID           `json:"id"`
	ThemeID       uuid.UUID           `json:"theme_id"`
	Version       int                 `json:"version"`
	Title         string              `json:"title"`
	Status        string              `json:"status"`
	Difficulty    string              `json:"difficulty"`
	Tags          []string            `json:"tags"`
	Content       domain.ThemeContent `json:"content"`
	ChangeSummary *string             `json:"change_summary,omitempty"`
	IsMilestone   bool                `json:"is_milestone"`
	CreatedBy     uuid.UUID           `json:"created_by"`
	CreatedAt     time.Time           `json:"created_at"`
}

type versionDiffResponse struct {
	ThemeID         uuid.UUID `json:"theme_id"`
	FromVersion     int       `json:"from_version"`
	ToVersion       int       `json:"to_version"`
	TitleChanged    bool      `json:"title_changed"`
	OldTitle        string    `json:"old_title"`
	NewTitle        string    `json:"new_title"`
	DifficultyFrom  string    `json:"difficulty_from"`
	DifficultyTo    string    `json:"difficulty_to"`
	TagsAdded       []string  `json:"tags_added"`
	TagsRemoved     []string  `json:"tags_removed"`
	QuestionsDelta  int       `json:"questions_delta"`
	FlashcardsDelta int       `json:"flashcards_delta"`
	FicheDelta      int       `json:"fiche_delta"`
}

func toVersionResponse(v *domain.ThemeVersion) versionResponse {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}
	return versionResponse{
		ID:            v.ID,
		ThemeID:       v.ThemeID,
		Version:       v.Version,
		Title:         v.Title,
		Status:        string(v.Status),
		Difficulty:    string(v.Difficulty),
		Tags:          tags,
		Content:       v.Content,
		ChangeSummary: v.ChangeSummary,
		IsMilestone:   v.IsMilestone,
		CreatedBy:     v.CreatedBy,
		CreatedAt:     v.CreatedAt,
	}
}

// Snapshot handles POST /api/v1/themes/{id}/versions.
func (h *VersionHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	req := snapshotRequest{}
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	v, err := h.versions.Snapshot(r.Context(), version.SnapshotInput{
		ThemeID:       themeID,
		ChangeSummary: req.ChangeSummary,
		IsMilestone:   req.IsMilestone,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toVersionResponse(v))
}

// Restore handles POST /api/v1/themes/{id}/restore.
func (h *VersionHandler) Restore(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req restoreRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v, err := h.versions.Restore(r.Context(), version.RestoreInput{
		ThemeID:   themeID,
		VersionID: req.VersionID,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toVersionResponse(v))
}

// History handles GET /api/v1/themes/{id}/versions. Query parameters: limit,
// milestones_only.
func (h *VersionHandler) History(w http.ResponseWriter, r *http.Request) {
	themeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	q := r.URL.Query()

	versions, err := h.versions.History(r.Context(), version.HistoryInput{
		ThemeID:        themeID,
		Limit:          queryInt(q.Get("limit")),
		MilestonesOnly: q.Get("milestones_only") == "true",
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := make([]versionResponse, 0, len(versions))
	for _, v := range versions {
		resp = append(resp, toVersionResponse(v))
	}
	writeData(w, http.StatusOK, resp)
}

// Compare handles GET /api/v1/versions/compare?version1=...&version2=...
func (h *VersionHandler) Compare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	v1, err := uuid.Parse(q.Get("version1"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "version1 must be a valid UUID")
		return
	}
	v2, err := uuid.Parse(q.Get("version2"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "version2 must be a valid UUID")
		return
	}

	diff, err := h.versions.Compare(r.Context(), version.CompareInput{Version1ID: v1, Version2ID: v2})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	tagsAdded := diff.TagsAdded
	if tagsAdded == nil {
		tagsAdded = []string{}
	}
	tagsRemoved := diff.TagsRemoved
	if tagsRemoved == nil {
		tagsRemoved = []string{}
	}
	writeData(w, http.StatusOK, versionDiffResponse{
		ThemeID:         diff.ThemeID,
		FromVersion:     diff.FromVersion,
		ToVersion:       diff.ToVersion,
		TitleChanged:    diff.TitleChanged,
		OldTitle:        diff.OldTitle,
		NewTitle:        diff.NewTitle,
		DifficultyFrom:  string(diff.DifficultyFrom),
		DifficultyTo:    string(diff.DifficultyTo),
		TagsAdded:       tagsAdded,
		TagsRemoved:     tagsRemoved,
		QuestionsDelta:  diff.QuestionsDelta,
		FlashcardsDelta: diff.FlashcardsDelta,
		FicheDelta:      diff.FicheDelta,
	})
}
