package response

import "movie-booking-client/internal/data/entity"

// AuthResponse is the data of /auth/login and /auth/register.
type AuthResponse struct {
	Token string   `json:"token"`
	Type  string   `json:"type"`
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// ToUser splits the profile off the token.
func (a *AuthResponse) ToUser() *entity.User {
	roles := make([]string, len(a.Roles))
	copy(roles, a.Roles)

	return &entity.User{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Roles: roles,
	}
}
