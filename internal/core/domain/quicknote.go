package domain

import "time"

// QuickNote is a free-form note attached to a user.
type QuickNote struct {
	NoteID      int64
	NoteContent string
	CreatedAt   time.Time
	UserID      int64
}
