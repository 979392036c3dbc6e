package service

import (
	"context"
	"time"

	"notekeeper/internal/models"
	"notekeeper/internal/repository"
)

// Authorization covers signup, login and the session token lifecycle.
type Authorization interface {
	SignUp(in SignupInput) (*models.User, error)
	Login(in LoginInput) (*models.User, error)
	IssueSession(userID int) (string, error)
	ResolveSession(token string) (*models.User, error)
}

// Notes exposes note CRUD scoped to an owning user.
type Notes interface {
	Add(ctx context.Context, ownerID int, body string) (*models.Note, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Note, error)
	Delete(ctx context.Context, ownerID, noteID int) error
}

// SessionConfig carries the signing secret and lifetime for session tokens.
// The secret comes from the environment, never from source.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Notes
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, sess SessionConfig) *Service {
	return &Service{
		Notes:         NewNotesService(repos.Notes),
		Authorization: NewAuthService(repos.Users, sess),
	}
}
