package models

import "time"

// Row structs for the four owned-resource tables. Status columns are plain
// nullable text; the closed value set is enforced at the API boundary.

// ReadingListItem mirrors the reading_list table.
type ReadingListItem struct {
	BookID    int64
	BookTitle string
	Status    *string
	CreatedAt time.Time
	UserID    int64
}

// Task mirrors the daily_tasks_list table.
type Task struct {
	TaskID    int64
	TaskTitle string
	Status    *string
	CreatedAt time.Time
	UserID    int64
}

// MovieListItem mirrors the movie_list table.
type MovieListItem struct {
	MovieID    int64
	MovieTitle string
	Status     *string
	CreatedAt  time.Time
	UserID     int64
}

// QuickNote mirrors the quick_notes table.
type QuickNote struct {
	NoteID      int64
	NoteContent string
	CreatedAt   time.Time
	UserID      int64
}
