package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayboard/dayboard_backend/internal/apperrors"
	"github.com/dayboard/dayboard_backend/internal/core/domain"
	portsrepo "github.com/dayboard/dayboard_backend/internal/core/ports/repositories"
	"github.com/dayboard/dayboard_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReadingListRepository struct {
	db *pgxpool.Pool
}

// NewReadingListRepository creates a pgx-backed reading list repository.
func NewReadingListRepository(db *pgxpool.Pool) portsrepo.ReadingListRepository {
	return &PgxReadingListRepository{db: db}
}

var _ portsrepo.ReadingListRepository = (*PgxReadingListRepository)(nil)

func toDomainReadingItem(m models.ReadingListItem) domain.ReadingListItem {
	return domain.ReadingListItem{
		BookID:    m.BookID,
		BookTitle: m.BookTitle,
		Status:    statusToDomain(m.Status),
		CreatedAt: m.CreatedAt,
		UserID:    m.UserID,
	}
}

func (r *PgxReadingListRepository) SaveItem(ctx context.Context, item domain.ReadingListItem) (*domain.ReadingListItem, error) {
	query := `
        INSERT INTO reading_list (book_title, status, created_at, user_id)
        VALUES ($1, $2, $3, $4)
        RETURNING book_id;
    `
	err := r.db.QueryRow(ctx, query, item.BookTitle, statusToModel(item.Status), item.CreatedAt, item.UserID).Scan(&item.BookID)
	if err != nil {
		return nil, fmt.Errorf("failed to save reading list item: %w", err)
	}
	return &item, nil
}

func (r *PgxReadingListRepository) FindItems(ctx context.Context, userID int64) ([]domain.ReadingListItem, error) {
	query := `
        SELECT book_id, book_title, status, created_at, user_id
        FROM reading_list
        WHERE user_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reading list: %w", err)
	}
	defer rows.Close()

	items := []domain.ReadingListItem{}
	for rows.Next() {
		var m models.ReadingListItem
		if err := rows.Scan(&m.BookID, &m.BookTitle, &m.Status, &m.CreatedAt, &m.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan reading list item: %w", err)
		}
		items = append(items, toDomainReadingItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reading list rows: %w", err)
	}
	return items, nil
}

func (r *PgxReadingListRepository) FindItemByID(ctx context.Context, userID, bookID int64) (*domain.ReadingListItem, error) {
	query := `
        SELECT book_id, book_title, status, created_at, user_id
        FROM reading_list
        WHERE book_id = $1 AND user_id = $2;
    `
	var m models.ReadingListItem
	err := r.db.QueryRow(ctx, query, bookID, userID).Scan(&m.BookID, &m.BookTitle, &m.Status, &m.CreatedAt, &m.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reading list item %d: %w", bookID, err)
	}
	item := toDomainReadingItem(m)
	return &item, nil
}

func (r *PgxReadingListRepository) UpdateItem(ctx context.Context, item domain.ReadingListItem) error {
	query := `
        UPDATE reading_list
        SET book_title = $1, status = $2
        WHERE book_id = $3 AND user_id = $4;
    `
	tag, err := r.db.Exec(ctx, query, item.BookTitle, statusToModel(item.Status), item.BookID, item.UserID)
	if err != nil {
		return fmt.Errorf("failed to update reading list item %d: %w", item.BookID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReadingListRepository) DeleteItem(ctx context.Context, userID, bookID int64) error {
	query := `DELETE FROM reading_list WHERE book_id = $1 AND user_id = $2;`
	tag, err := r.db.Exec(ctx, query, bookID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete reading list item %d: %w", bookID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
