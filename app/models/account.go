package models

import "strings"

// Account is a platform account as returned by the backend. The
// front-end never persists accounts; each screen refetches what it shows.
type Account struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
}

// DisplayName renders the owner dropdown label: full name when present,
// otherwise the e-mail address.
func (a Account) DisplayName() string {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name != "" {
		return name
	}
	return a.Email
}
