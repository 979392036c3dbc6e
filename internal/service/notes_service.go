package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"notekeeper/internal/models"
	"notekeeper/internal/repository"
)

// Domain errors for note flows.
var (
	ErrEmptyNote    = errors.New("note body is empty")
	ErrNoteTooLong  = errors.New("note body exceeds 1000 characters")
	ErrNoteNotFound = errors.New("note not found")
	ErrNotOwner     = errors.New("note belongs to another user")
)

// NotesService handles note CRUD scoped to an owner.
type NotesService struct {
	notes repository.Notes
}

func NewNotesService(notes repository.Notes) *NotesService {
	return &NotesService{notes: notes}
}

var _ Notes = (*NotesService)(nil)

// Add persists a new note owned by ownerID with a server-assigned timestamp.
func (s *NotesService) Add(ctx context.Context, ownerID int, body string) (*models.Note, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyNote
	}
	if len(body) > models.MaxNoteBodyLen {
		return nil, ErrNoteTooLong
	}

	n := models.Note{
		Body:      body,
		CreatedAt: time.Now().UTC(),
		UserID:    ownerID,
	}
	id, err := s.notes.Insert(ctx, n)
	if err != nil {
		return nil, err
	}
	n.ID = id
	return &n, nil
}

// ListByOwner returns all notes owned by ownerID, newest first.
func (s *NotesService) ListByOwner(ctx context.Context, ownerID int) ([]models.Note, error) {
	return s.notes.ListByOwner(ctx, ownerID)
}

// Delete removes a note after checking it exists and belongs to ownerID.
func (s *NotesService) Delete(ctx context.Context, ownerID, noteID int) error {
	n, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNoteNotFound
	}
	if n.UserID != ownerID {
		return ErrNotOwner
	}
	return s.notes.Delete(ctx, noteID)
}
