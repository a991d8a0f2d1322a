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

type PgxQuickNoteRepository struct {
	db *pgxpool.Pool
}

// NewQuickNoteRepository creates a pgx-backed quick note repository.
func NewQuickNoteRepository(db *pgxpool.Pool) portsrepo.QuickNoteRepository {
	return &PgxQuickNoteRepository{db: db}
}

var _ portsrepo.QuickNoteRepository = (*PgxQuickNoteRepository)(nil)

func toDomainNote(m models.QuickNote) domain.QuickNote {
	return domain.QuickNote{
		NoteID:      m.NoteID,
		NoteContent: m.NoteContent,
		CreatedAt:   m.CreatedAt,
		UserID:      m.UserID,
	}
}

func (r *PgxQuickNoteRepository) SaveNote(ctx context.Context, note domain.QuickNote) (*domain.QuickNote, error) {
	query := `
        INSERT INTO quick_notes (note_content, created_at, user_id)
        VALUES ($1, $2, $3)
        RETURNING note_id;
    `
	err := r.db.QueryRow(ctx, query, note.NoteContent, note.CreatedAt, note.UserID).Scan(&note.NoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to save quick note: %w", err)
	}
	return &note, nil
}

func (r *PgxQuickNoteRepository) FindNotes(ctx context.Context, userID int64) ([]domain.QuickNote, error) {
	query := `
        SELECT note_id, note_content, created_at, user_id
        FROM quick_notes
        WHERE user_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quick notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.QuickNote{}
	for rows.Next() {
		var m models.QuickNote
		if err := rows.Scan(&m.NoteID, &m.NoteContent, &m.CreatedAt, &m.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan quick note: %w", err)
		}
		notes = append(notes, toDomainNote(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quick note rows: %w", err)
	}
	return notes, nil
}

func (r *PgxQuickNoteRepository) FindNoteByID(ctx context.Context, userID, noteID int64) (*domain.QuickNote, error) {
	query := `
        SELECT note_id, note_content, created_at, user_id
        FROM quick_notes
        WHERE note_id = $1 AND user_id = $2;
    `
	var m models.QuickNote
	err := r.db.QueryRow(ctx, query, noteID, userID).Scan(&m.NoteID, &m.NoteContent, &m.CreatedAt, &m.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quick note %d: %w", noteID, err)
	}
	note := toDomainNote(m)
	return &note, nil
}

func (r *PgxQuickNoteRepository) UpdateNote(ctx context.Context, note domain.QuickNote) error {
	query := `
        UPDATE quick_notes
        SET note_content = $1
        WHERE note_id = $2 AND user_id = $3;
    `
	tag, err := r.db.Exec(ctx, query, note.NoteContent, note.NoteID, note.UserID)
	if err != nil {
		return fmt.Errorf("failed to update quick note %d: %w", note.NoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxQuickNoteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	query := `DELETE FROM quick_notes WHERE note_id = $1 AND user_id = $2;`
	tag, err := r.db.Exec(ctx, query, noteID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete quick note %d: %w", noteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
