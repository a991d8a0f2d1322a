package domain

import "time"

// Task is an entry on a user's daily task list.
type Task struct {
	TaskID    int64
	TaskTitle string
	Status    *ItemStatus
	CreatedAt time.Time
	UserID    int64
}
