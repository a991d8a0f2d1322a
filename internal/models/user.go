package models

import "time"

// User mirrors the users table.
type User struct {
	ID        int64
	Email     string
	Password  string
	CreatedAt time.Time
}
