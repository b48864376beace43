package models

import (
	"github.com/go-playground/validator/v10"
)

const (
	TENANT_STATUS_PENDING   = "pending"
	TENANT_STATUS_ACTIVE    = "active"
	TENANT_STATUS_SUSPENDED = "suspended"
)

// Tenant is a customer workspace. Status and plan are free-standing
// strings; no cross-field invariant is enforced on this side.
type Tenant struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	OwnerAccountID string `json:"owner_account_id,omitempty"`
	Status         string `json:"status"`
	Plan           string `json:"plan"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

type TenantCreate struct {
	Name           string `json:"name" validate:"required,min=2,max=150"`
	OwnerAccountID string `json:"owner_account_id,omitempty"`
	Status         string `json:"status,omitempty" validate:"omitempty,oneof=pending active suspended"`
	Plan           string `json:"plan,omitempty" validate:"max=50"`
}

func (t *TenantCreate) Validate() error {
	v := validator.New()

	return v.Struct(t)
}

type TenantUpdate struct {
	Name           string `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	OwnerAccountID string `json:"owner_account_id,omitempty"`
	Status         string `json:"status,omitempty" validate:"omitempty,oneof=pending active suspended"`
	Plan           string `json:"plan,omitempty" validate:"max=50"`
}

func (t *TenantUpdate) Validate() error {
	v := validator.New()

	return v.Struct(t)
}

// TenantUser is a sub-user scoped to exactly one tenant. Invited via
// e-mail; this UI never creates one with a password.
type TenantUser struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenant_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
}

type TenantUserInvite struct {
	Email string `json:"email" validate:"required,email,min=5,max=200"`
	Role  string `json:"role,omitempty" validate:"omitempty,oneof=tenant_admin sub_admin viewer"`
}

func (i *TenantUserInvite) Validate() error {
	v := validator.New()

	return v.Struct(i)
}
