package tenant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Onboard creates a tenant and its first direction-role user in one
// transaction. Returns ErrAlreadyExists when the slug is taken.
func (s *Service) Onboard(ctx context.Context, input OnboardInput) (*OnboardResult, error) {
	input.Slug = strings.ToLower(strings.TrimSpace(input.Slug))
	input.AdminEmail = strings.ToLower(strings.TrimSpace(input.AdminEmail))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var result OnboardResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		tenant, createErr := s.tenants.Create(txCtx, &domain.Tenant{
			ID:   uuid.New(),
			Name: input.Name,
			Slug: input.Slug,
		})
		if createErr != nil {
			return fmt.Errorf("create tenant: %w", createErr)
		}

		admin, createErr := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			TenantID:     tenant.ID,
			Email:        input.AdminEmail,
			Name:         input.AdminName,
			PasswordHash: string(hash),
			Role:         domain.UserRoleDirection,
			IsActive:     true,
		})
		if createErr != nil {
			return fmt.Errorf("create admin user: %w", createErr)
		}

		result = OnboardResult{Tenant: tenant, Admin: admin}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tenant onboarded",
		slog.String("tenant_id", result.Tenant.ID.String()),
		slog.String("slug", result.Tenant.Slug),
	)

	return &result, nil
}

// Get returns a tenant by id.
func (s *Service) Get(ctx context.Context, input GetInput) (*domain.Tenant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tenant, err := s.tenants.GetByID(ctx, input.TenantID)
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}

	return tenant, nil
}

// GetBySlug returns a tenant by its URL slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	tenant, err := s.tenants.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get tenant by slug: %w", err)
	}

	return tenant, nil
}
