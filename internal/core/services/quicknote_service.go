package services

import (
	"context"
	"time"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
	portsrepo "github.com/dayboard/dayboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dayboard/dayboard_backend/internal/core/ports/services"
	"github.com/dayboard/dayboard_backend/internal/dto"
)

// quickNoteService implements QuickNoteSvcFacade.
type quickNoteService struct {
	repo portsrepo.QuickNoteRepository
}

// NewQuickNoteService creates a new quickNoteService.
func NewQuickNoteService(repo portsrepo.QuickNoteRepository) portssvc.QuickNoteSvcFacade {
	return &quickNoteService{repo: repo}
}

func (s *quickNoteService) ListNotes(ctx context.Context, userID int64) ([]domain.QuickNote, error) {
	return s.repo.FindNotes(ctx, userID)
}

func (s *quickNoteService) GetNote(ctx context.Context, userID, noteID int64) (*domain.QuickNote, error) {
	return s.repo.FindNoteByID(ctx, userID, noteID)
}

func (s *quickNoteService) CreateNote(ctx context.Context, userID int64, req dto.CreateQuickNoteRequest) (*domain.QuickNote, error) {
	note := domain.QuickNote{
		NoteContent: req.NoteContent,
		CreatedAt:   time.Now().UTC(),
		UserID:      userID,
	}
	return s.repo.SaveNote(ctx, note)
}

func (s *quickNoteService) UpdateNote(ctx context.Context, userID, noteID int64, req dto.UpdateQuickNoteRequest) (*domain.QuickNote, error) {
	note, err := s.repo.FindNoteByID(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	if req.NoteContent != nil {
		note.NoteContent = *req.NoteContent
	}
	if err := s.repo.UpdateNote(ctx, *note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *quickNoteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	return s.repo.DeleteNote(ctx, userID, noteID)
}
