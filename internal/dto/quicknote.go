package dto

import (
	"time"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
)

// CreateQuickNoteRequest adds a quick note.
type CreateQuickNoteRequest struct {
	NoteContent string `json:"note_content" binding:"required"`
}

// UpdateQuickNoteRequest replaces a note's content.
type UpdateQuickNoteRequest struct {
	NoteContent *string `json:"note_content"`
}

// QuickNoteResponse mirrors the quick_notes row shape.
type QuickNoteResponse struct {
	NoteID      int64     `json:"note_id"`
	NoteContent string    `json:"note_content"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      int64     `json:"user_id"`
}

// ToQuickNoteResponse converts a domain note to its response DTO.
func ToQuickNoteResponse(note *domain.QuickNote) QuickNoteResponse {
	return QuickNoteResponse{
		NoteID:      note.NoteID,
		NoteContent: note.NoteContent,
		CreatedAt:   note.CreatedAt,
		UserID:      note.UserID,
	}
}

// ToQuickNoteListResponse converts a slice of domain notes.
func ToQuickNoteListResponse(notes []domain.QuickNote) []QuickNoteResponse {
	out := make([]QuickNoteResponse, len(notes))
	for i := range notes {
		out[i] = ToQuickNoteResponse(&notes[i])
	}
	return out
}
