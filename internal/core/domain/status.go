package domain

import (
	"fmt"

	"github.com/dayboard/dayboard_backend/internal/apperrors"
)

// ItemStatus is the closed set of progress markers carried by list items.
// Values are validated at the API boundary; the database stores plain text,
// so nothing else enforces the set.
type ItemStatus string

const (
	StatusRead      ItemStatus = "Read"
	StatusUnread    ItemStatus = "Unread"
	StatusWatched   ItemStatus = "Watched"
	StatusUnwatched ItemStatus = "Unwatched"
)

// ParseReadingStatus validates a status string for reading list items and
// tasks. An empty string maps to nil (status not set).
func ParseReadingStatus(s string) (*ItemStatus, error) {
	switch ItemStatus(s) {
	case "":
		return nil, nil
	case StatusRead, StatusUnread:
		v := ItemStatus(s)
		return &v, nil
	}
	return nil, fmt.Errorf("%w: status must be %q or %q", apperrors.ErrValidation, StatusRead, StatusUnread)
}

// ParseWatchStatus validates a status string for movie list items.
func ParseWatchStatus(s string) (*ItemStatus, error) {
	switch ItemStatus(s) {
	case "":
		return nil, nil
	case StatusWatched, StatusUnwatched:
		v := ItemStatus(s)
		return &v, nil
	}
	return nil, fmt.Errorf("%w: status must be %q or %q", apperrors.ErrValidation, StatusWatched, StatusUnwatched)
}
