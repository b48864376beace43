package usercontext

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UserContext is the current user as reported by the backend, cached in
// request Locals for the lifetime of one request. Role is used for
// navigation filtering only; authorization is enforced upstream on every
// proxied call.
type UserContext struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Role       string `json:"role"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
	IsLoggedIn bool   `json:"-"`
}

// GetUserContext retrieves the user context from fiber context.
// Returns a default anonymous context if none is set.
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals(KeyUserContext); ctx != nil {
		if uc, ok := ctx.(UserContext); ok {
			return uc
		}
	}
	return UserContext{IsLoggedIn: false}
}

// DisplayName returns the user's full name, falling back to the email.
func (u UserContext) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name != "" {
		return name
	}
	return u.Email
}

// Initials returns up to two letters for the avatar badge.
func (u UserContext) Initials() string {
	var b strings.Builder
	b.WriteString(firstLetter(u.FirstName))
	b.WriteString(firstLetter(u.LastName))
	if b.Len() == 0 {
		return firstLetter(u.Email)
	}
	return b.String()
}

// firstLetter takes the first rune, not the first byte; names are not
// ASCII-only.
func firstLetter(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return ""
}

// RoleLabel maps the backend role slug to its display label.
func (u UserContext) RoleLabel() string {
	switch u.Role {
	case RoleSuperAdmin:
		return "Admin"
	case RolePlatformUser:
		return "Platform User"
	case RoleTenantAdmin:
		return "Tenant Admin"
	case RoleSubAdmin:
		return "Sub Admin"
	case RoleViewer:
		return "Viewer"
	default:
		return u.Role
	}
}

// IsSuperAdmin reports whether the platform-admin navigation should show.
func (u UserContext) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}
