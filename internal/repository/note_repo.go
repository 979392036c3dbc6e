package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"notekeeper/internal/models"
)

type NoteSQLite struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteSQLite { return &NoteSQLite{db: db} }

var _ Notes = (*NoteSQLite)(nil)

const (
	insertNoteSQL        = `INSERT INTO notes (body, created_at, user_id) VALUES (?, ?, ?)`
	selectNoteByIDSQL    = `SELECT id, body, created_at, user_id FROM notes WHERE id = ?`
	selectNotesByUserSQL = `SELECT id, body, created_at, user_id FROM notes WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	deleteNoteSQL        = `DELETE FROM notes WHERE id = ?`
)

// sqliteTimeLayout is the SQLite TIMESTAMP format "YYYY-MM-DD HH:MM:SS".
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Insert stores a new note and returns its ID. If CreatedAt is zero it is set to now.
func (r *NoteSQLite) Insert(ctx context.Context, n models.Note) (int, error) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	} else {
		n.CreatedAt = n.CreatedAt.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertNoteSQL,
		n.Body,
		n.CreatedAt.Format(sqliteTimeLayout),
		n.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert note for user %d: %w", n.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for note: %w", err)
	}
	return int(lastID), nil
}

// ListByOwner returns all notes owned by ownerID, newest first.
func (r *NoteSQLite) ListByOwner(ctx context.Context, ownerID int) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, selectNotesByUserSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select notes for user %d: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Note, 0, 16)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Body, &n.CreatedAt, &n.UserID); err != nil {
			return nil, err
		}
		n.CreatedAt = n.CreatedAt.UTC()
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a note by primary key. Returns (nil, nil) if not found.
func (r *NoteSQLite) GetByID(ctx context.Context, id int) (*models.Note, error) {
	var n models.Note
	err := r.db.QueryRowContext(ctx, selectNoteByIDSQL, id).Scan(&n.ID, &n.Body, &n.CreatedAt, &n.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select note %d: %w", id, err)
	}
	n.CreatedAt = n.CreatedAt.UTC()
	return &n, nil
}

// Delete removes a note by id. Deleting a missing id is not an error here;
// existence is checked at the service layer.
func (r *NoteSQLite) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteNoteSQL, id); err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	return nil
}
