package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTenant creates an active tenant. Returns a filled domain.Tenant.
func SeedTenant(t *testing.T, pool *pgxpool.Pool) domain.Tenant {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	tenant := domain.Tenant{
		ID:        uuid.New(),
		Name:      "Test School " + suffix,
		Slug:      "test-school-" + suffix,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tenants (id, name, slug, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		tenant.ID, tenant.Name, tenant.Slug, tenant.IsActive, tenant.CreatedAt, tenant.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTenant insert: %v", err)
	}

	return tenant
}

// SeedUser creates an active user with the given role in the tenant.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhashnotarealhashzzzzz",
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, tenant_id, email, name, password_hash, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.TenantID, user.Email, user.Name, user.PasswordHash,
		string(user.Role), user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedTheme creates a theme with one question, in the given status, created
// by the given user. Returns a filled domain.Theme.
func SeedTheme(t *testing.T, pool *pgxpool.Pool, tenantID, createdBy uuid.UUID, status domain.ThemeStatus) domain.Theme {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	theme := domain.Theme{
		ID:         uuid.New(),
		TenantID:   tenantID,
		Title:      "Test Theme " + suffix,
		Difficulty: domain.DifficultyMedium,
		Tags:       []string{"seed"},
		Content: domain.ThemeContent{
			Questions: []domain.Question{
				{ID: "q1", Text: "2+2?", Choices: []string{"3", "4"}, Answer: 1},
			},
		},
		Status:    status,
		Version:   1,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	content, err := json.Marshal(theme.Content)
	if err != nil {
		t.Fatalf("testhelper: SeedTheme marshal content: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO themes (id, tenant_id, title, difficulty, tags, content, status, version, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		theme.ID, theme.TenantID, theme.Title, string(theme.Difficulty), theme.Tags,
		content, string(theme.Status), theme.Version, theme.CreatedBy, theme.CreatedAt, theme.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTheme insert: %v", err)
	}

	return theme
}

// SeedVersion creates a version snapshot of the theme with the given number.
func SeedVersion(t *testing.T, pool *pgxpool.Pool, theme domain.Theme, number int, milestone bool) domain.ThemeVersion {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	v := domain.ThemeVersion{
		ID:          uuid.New(),
		ThemeID:     theme.ID,
		TenantID:    theme.TenantID,
		Version:     number,
		Title:       theme.Title,
		Status:      theme.Status,
		Difficulty:  theme.Difficulty,
		Tags:        theme.Tags,
		Content:     theme.Content,
		IsMilestone: milestone,
		CreatedBy:   theme.CreatedBy,
		CreatedAt:   now,
	}

	content, err := json.Marshal(v.Content)
	if err != nil {
		t.Fatalf("testhelper: SeedVersion marshal content: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO theme_versions (id, theme_id, tenant_id, version, title, status, difficulty, tags, content, is_milestone, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		v.ID, v.ThemeID, v.TenantID, v.Version, v.Title, string(v.Status),
		string(v.Difficulty), v.Tags, content, v.IsMilestone, v.CreatedBy, v.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVersion insert: %v", err)
	}

	return v
}

// SeedAnnotation creates an open annotation of the given type on version 1
// of the theme.
func SeedAnnotation(t *testing.T, pool *pgxpool.Pool, theme domain.Theme, authorID uuid.UUID, typ domain.AnnotationType) domain.Annotation {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Annotation{
		ID:           uuid.New(),
		ThemeID:      theme.ID,
		ThemeVersion: 1,
		TenantID:     theme.TenantID,
		AuthorID:     authorID,
		JSONPath:     "$.questions[0].text",
		Type:         typ,
		Content:      "seeded annotation",
		Status:       domain.AnnotationStatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO annotations (id, theme_id, theme_version, tenant_id, author_id, json_path, type, content, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.ID, a.ThemeID, a.ThemeVersion, a.TenantID, a.AuthorID, a.JSONPath,
		string(a.Type), a.Content, string(a.Status), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnnotation insert: %v", err)
	}

	return a
}
