package domain

import "time"

// MovieListItem is a movie on a user's watch list.
type MovieListItem struct {
	MovieID    int64
	MovieTitle string
	Status     *ItemStatus
	CreatedAt  time.Time
	UserID     int64
}
