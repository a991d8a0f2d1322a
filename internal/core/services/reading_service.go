package services

import (
	"context"
	"time"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
	portsrepo "github.com/dayboard/dayboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dayboard/dayboard_backend/internal/core/ports/services"
	"github.com/dayboard/dayboard_backend/internal/dto"
)

// readingListService implements ReadingListSvcFacade.
type readingListService struct {
	repo portsrepo.ReadingListRepository
}

// NewReadingListService creates a new readingListService.
func NewReadingListService(repo portsrepo.ReadingListRepository) portssvc.ReadingListSvcFacade {
	return &readingListService{repo: repo}
}

func (s *readingListService) ListItems(ctx context.Context, userID int64) ([]domain.ReadingListItem, error) {
	return s.repo.FindItems(ctx, userID)
}

func (s *readingListService) GetItem(ctx context.Context, userID, bookID int64) (*domain.ReadingListItem, error) {
	return s.repo.FindItemByID(ctx, userID, bookID)
}

func (s *readingListService) CreateItem(ctx context.Context, userID int64, req dto.CreateReadingListItemRequest) (*domain.ReadingListItem, error) {
	status, err := domain.ParseReadingStatus(req.Status)
	if err != nil {
		return nil, err
	}
	item := domain.ReadingListItem{
		BookTitle: req.BookTitle,
		Status:    status,
		CreatedAt: time.Now().UTC(),
		UserID:    userID,
	}
	return s.repo.SaveItem(ctx, item)
}

func (s *readingListService) UpdateItem(ctx context.Context, userID, bookID int64, req dto.UpdateReadingListItemRequest) (*domain.ReadingListItem, error) {
	item, err := s.repo.FindItemByID(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if req.BookTitle != nil {
		item.BookTitle = *req.BookTitle
	}
	if req.Status != nil {
		status, err := domain.ParseReadingStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		item.Status = status
	}
	if err := s.repo.UpdateItem(ctx, *item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *readingListService) DeleteItem(ctx context.Context, userID, bookID int64) error {
	return s.repo.DeleteItem(ctx, userID, bookID)
}
