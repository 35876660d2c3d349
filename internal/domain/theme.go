package domain

import (
	"time"

	"github.com/google/uuid"
)

// Theme is a pedagogical content unit (quiz questions, flashcards and/or a
// revision sheet) authored by a teacher. Status moves along the workflow
// graph in workflow.go; TenantID is immutable after creation.
type Theme struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Title       string
	Description *string
	Difficulty  Difficulty
	Tags        []string
	Content     ThemeContent
	Status      ThemeStatus
	Version     int
	IsPublic    bool
	CreatedBy   uuid.UUID
	SubmittedAt *time.Time
	SubmittedBy *uuid.UUID
	ReviewedAt  *time.Time
	ReviewedBy  *uuid.UUID
	PublishedAt *time.Time
	PublishedBy *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ThemeContent is the JSON content blob of a theme, stored as JSONB.
type ThemeContent struct {
	Questions  []Question     `json:"questions"`
	Flashcards []Flashcard    `json:"flashcards"`
	Fiche      []FicheSection `json:"fiche"`
}

// IsEmpty reports whether the content carries no study material at all.
func (c ThemeContent) IsEmpty() bool {
	return len(c.Questions) == 0 && len(c.Flashcards) == 0 && len(c.Fiche) == 0
}

// Question is a single quiz question with its choices.
type Question struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Choices     []string `json:"choices"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// Flashcard is a front/back memorization card.
type Flashcard struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// FicheSection is one section of the revision sheet.
type FicheSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ThemeFilter narrows theme list queries. Zero values mean "no filter".
type ThemeFilter struct {
	Status    ThemeStatus
	CreatedBy uuid.UUID
	Search    string
	Limit     int
	Offset    int
}

// ThemeUpdateParams holds partial update fields for a theme's editable
// content. nil means "don't change".
type ThemeUpdateParams struct {
	Title       *string
	Description *string
	Difficulty  *Difficulty
	Tags        []string
	Content     *ThemeContent
}

// TransitionStamps carries the timestamp/actor fields stamped alongside a
// status change. nil fields are left untouched.
type TransitionStamps struct {
	SubmittedAt *time.Time
	SubmittedBy *uuid.UUID
	ReviewedAt  *time.Time
	ReviewedBy  *uuid.UUID
	PublishedAt *time.Time
	PublishedBy *uuid.UUID
	IsPublic    *bool
}

// ThemeVersion is an immutable snapshot of a theme's content at a point in
// time. Version numbers are strictly increasing per theme; snapshots are
// never mutated after creation, only pruned by the retention job.
type ThemeVersion struct {
	ID            uuid.UUID
	ThemeID       uuid.UUID
	TenantID      uuid.UUID
	Version       int
	Title         string
	Status        ThemeStatus
	Difficulty    Difficulty
	Tags          []string
	Content       ThemeContent
	ChangeSummary *string
	IsMilestone   bool
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
}

// VersionDiff is the shallow structural diff between two versions of a theme.
// It covers title, difficulty, tag add/remove sets and item-count deltas; it
// is not a content-level diff.
type VersionDiff struct {
	ThemeID         uuid.UUID
	FromVersion     int
	ToVersion       int
	TitleChanged    bool
	OldTitle        string
	NewTitle        string
	DifficultyFrom  Difficulty
	DifficultyTo    Difficulty
	TagsAdded       []string
	TagsRemoved     []string
	QuestionsDelta  int
	FlashcardsDelta int
	FicheDelta      int
}

// Diff computes the shallow structural diff from v to other.
func (v ThemeVersion) Diff(other ThemeVersion) VersionDiff {
	d := VersionDiff{
		ThemeID:         v.ThemeID,
		FromVersion:     v.Version,
		ToVersion:       other.Version,
		OldTitle:        v.Title,
		NewTitle:        other.Title,
		DifficultyFrom:  v.Difficulty,
		DifficultyTo:    other.Difficulty,
		QuestionsDelta:  len(other.Content.Questions) - len(v.Content.Questions),
		FlashcardsDelta: len(other.Content.Flashcards) - len(v.Content.Flashcards),
		FicheDelta:      len(other.Content.Fiche) - len(v.Content.Fiche),
	}
	d.TitleChanged = v.Title != other.Title
	d.TagsAdded = tagDifference(other.Tags, v.Tags)
	d.TagsRemoved = tagDifference(v.Tags, other.Tags)
	return d
}

// tagDifference returns tags present in a but not in b, preserving order.
func tagDifference(a, b []string) []string {
	seen := make(map[string]bool, len(b))
	for _, t := range b {
		seen[t] = true
	}
	var out []string
	for _, t := range a {
		if !seen[t] {
			out = append(out, t)
		}
	}
	return out
}
