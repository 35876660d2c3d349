package tenant

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/scolaria/scolaria-backend/internal/domain"
)

const (
	minPasswordLength = 8
	maxNameLength     = 255
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// OnboardInput holds the parameters for creating a tenant with its first
// direction user.
type OnboardInput struct {
	Name          string
	Slug          string
	AdminEmail    string
	AdminName     string
	AdminPassword string
}

// Validate checks all fields and collects all errors.
func (i OnboardInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	if !slugPattern.MatchString(i.Slug) {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	if strings.TrimSpace(i.AdminEmail) == "" || !strings.Contains(i.AdminEmail, "@") {
		errs = append(errs, domain.FieldError{Field: "admin_email", Message: "must be a valid email address"})
	}
	if strings.TrimSpace(i.AdminName) == "" {
		errs = append(errs, domain.FieldError{Field: "admin_name", Message: "required"})
	}
	if len(i.AdminPassword) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "admin_password", Message: "min 8 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetInput holds the parameters for fetching a tenant.
type GetInput struct {
	TenantID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetInput) Validate() error {
	if i.TenantID == uuid.Nil {
		return domain.NewValidationError("tenant_id", "required")
	}
	return nil
}
