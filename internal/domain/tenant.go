package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is an isolated school/organization account. All data is partitioned
// by tenant id; cross-tenant access is forbidden everywhere.
type Tenant struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is an account within a tenant.
type User struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Notification is an in-app notification row. Written fire-and-forget by the
// workflow and annotation services.
type Notification struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	RecipientID uuid.UUID
	Type        NotificationType
	ThemeID     *uuid.UUID
	Message     string
	IsRead      bool
	CreatedAt   time.Time
}
