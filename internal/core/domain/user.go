package domain

import "time"

// User represents a registered account. PasswordHash is a bcrypt hash with
// the salt embedded; the plaintext password never leaves the handler layer.
type User struct {
	UserID       int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
