package models

import "time"

// MaxNoteBodyLen bounds the note text, mirrored by a CHECK constraint in the schema.
const MaxNoteBodyLen = 1000

// Note is a user-owned text record. Notes are created and deleted, never updated.
type Note struct {
	ID        int       `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int       `json:"user_id"` // owning user, required
}
