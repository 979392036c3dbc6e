package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"notekeeper/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) notesPage(c *gin.Context) {
	u := currentUser(c)
	notes, err := h.services.ListByOwner(c.Request.Context(), u.ID)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("notes_list_failed", "userId", u.ID, "err", err)
		}
		c.String(http.StatusInternalServerError, "failed to load notes")
		return
	}
	h.render(c, http.StatusOK, "notes.html", gin.H{"Notes": notes})
}

func (h *Handler) addNote(c *gin.Context) {
	u := currentUser(c)
	body := c.PostForm("note")

	if _, err := h.services.Add(c.Request.Context(), u.ID, body); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyNote):
			setFlash(c, flashError, "Note cannot be empty.")
		case errors.Is(err, service.ErrNoteTooLong):
			setFlash(c, flashError, "Note is too long (1000 characters max).")
		default:
			if h.log != nil {
				h.log.Errorw("note_add_failed", "userId", u.ID, "err", err)
			}
			c.String(http.StatusInternalServerError, "failed to add note")
			return
		}
		c.Redirect(http.StatusFound, "/notes")
		return
	}

	setFlash(c, flashSuccess, "Note Added!")
	c.Redirect(http.StatusFound, "/notes")
}

func (h *Handler) deleteNote(c *gin.Context) {
	u := currentUser(c)
	noteID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	if err := h.services.Notes.Delete(c.Request.Context(), u.ID, noteID); err != nil {
		switch {
		case errors.Is(err, service.ErrNoteNotFound):
			c.String(http.StatusNotFound, "404 page not found")
		case errors.Is(err, service.ErrNotOwner):
			// Don't reveal that the id exists under another account.
			if h.log != nil {
				h.log.Infow("note_delete_foreign", "userId", u.ID, "noteId", noteID)
			}
			c.String(http.StatusNotFound, "404 page not found")
		default:
			if h.log != nil {
				h.log.Errorw("note_delete_failed", "userId", u.ID, "noteId", noteID, "err", err)
			}
			c.String(http.StatusInternalServerError, "failed to delete note")
		}
		return
	}

	c.Redirect(http.StatusFound, "/notes")
}
