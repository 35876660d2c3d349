package auth

import (
	"strings"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

// LoginInput holds the parameters for a tenant-scoped password login.
type LoginInput struct {
	TenantSlug string
	Email      string
	Password   string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.TenantSlug) == "" {
		errs = append(errs, domain.FieldError{Field: "tenant", Message: "required"})
	}
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
