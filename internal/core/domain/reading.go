package domain

import "time"

// ReadingListItem is a book on a user's reading list.
type ReadingListItem struct {
	BookID    int64
	BookTitle string
	Status    *ItemStatus
	CreatedAt time.Time
	UserID    int64
}
