package entity

import "time"

// Storage keys of the persisted session. They are written and cleared together.
const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
)

// Session is the persisted token/profile pair.
type Session struct {
	Token     string
	User      *User
	ExpiresAt *time.Time // nil when the token carries no expiry
}
