package repository

import (
	"context"
	"database/sql"

	"notekeeper/internal/models"
	"notekeeper/internal/repository/db"
)

// InitDB opens the SQLite database at path and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}

// Users is the persistence boundary for accounts.
type Users interface {
	Create(username, email, hash string) (int, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}

// Notes is the persistence boundary for user-owned notes.
type Notes interface {
	Insert(ctx context.Context, n models.Note) (int, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Note, error)
	GetByID(ctx context.Context, id int) (*models.Note, error)
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Users Users
	Notes Notes
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Notes: NewNoteRepository(db),
	}
}
