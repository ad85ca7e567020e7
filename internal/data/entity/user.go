package entity

import "slices"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is the cached profile of the logged-in account. The backend stays
// authoritative for it.
type User struct {
	ID    int      `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	Email string   `json:"email" yaml:"email"`
	Roles []string `json:"roles" yaml:"roles"`
}

func (u *User) HasRole(role string) bool {
	if u == nil {
		return false
	}
	return slices.Contains(u.Roles, role)
}

func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}
