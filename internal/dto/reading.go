package dto

import (
	"time"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
)

// CreateReadingListItemRequest adds a book to the reading list. Status is
// optional and must be one of the closed reading status set when present.
type CreateReadingListItemRequest struct {
	BookTitle string `json:"book_title" binding:"required"`
	Status    string `json:"status"`
}

// UpdateReadingListItemRequest updates a reading list entry. Pointers
// distinguish omitted fields from zero values.
type UpdateReadingListItemRequest struct {
	BookTitle *string `json:"book_title"`
	Status    *string `json:"status"`
}

// ReadingListItemResponse mirrors the reading_list row shape.
type ReadingListItemResponse struct {
	BookID    int64     `json:"book_id"`
	BookTitle string    `json:"book_title"`
	Status    *string   `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int64     `json:"user_id"`
}

// ToReadingListItemResponse converts a domain item to its response DTO.
func ToReadingListItemResponse(item *domain.ReadingListItem) ReadingListItemResponse {
	return ReadingListItemResponse{
		BookID:    item.BookID,
		BookTitle: item.BookTitle,
		Status:    statusString(item.Status),
		CreatedAt: item.CreatedAt,
		UserID:    item.UserID,
	}
}

// ToReadingListResponse converts a slice of domain items.
func ToReadingListResponse(items []domain.ReadingListItem) []ReadingListItemResponse {
	out := make([]ReadingListItemResponse, len(items))
	for i := range items {
		out[i] = ToReadingListItemResponse(&items[i])
	}
	return out
}

func statusString(s *domain.ItemStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
