package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/scolaria/scolaria-backend/internal/auth"
	"github.com/scolaria/scolaria-backend/internal/domain"
)

// Login authenticates a user with email + password inside a tenant.
// Returns ErrUnauthorized if the tenant is unknown or inactive, the email is
// not found, the account is disabled or the password is wrong. All failure
// modes collapse to the same error so responses do not leak which part was
// wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.TenantSlug = strings.TrimSpace(input.TenantSlug)
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tenant, err := s.tenants.GetBySlug(ctx, input.TenantSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get tenant: %w", err)
	}
	if !tenant.IsActive {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByEmail(ctx, tenant.ID, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(auth.Identity{
		UserID:   user.ID,
		TenantID: tenant.ID,
		Role:     string(user.Role),
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("tenant_id", tenant.ID.String()),
	)

	return &AuthResult{AccessToken: token, User: user}, nil
}
