package handlers

import (
	"net/http"

	"notekeeper/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie  = "session"
	currentUserKey = "currentUser"
)

// currentUserMiddleware resolves the session cookie to a user and stores it
// in the request context. Missing or invalid cookies leave the request
// anonymous; the request itself always proceeds.
func (h *Handler) currentUserMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		c.Next()
		return
	}

	u, err := h.services.ResolveSession(token)
	if err != nil {
		// Stale, tampered or orphaned token: treat as anonymous.
		if h.log != nil {
			h.log.Debugw("session_resolve_failed", "err", err)
		}
		c.Next()
		return
	}

	c.Set(currentUserKey, u)
	c.Next()
}

// requireAuth gates a route on an authenticated identity, redirecting
// anonymous requests to the login page.
func (h *Handler) requireAuth(c *gin.Context) {
	if currentUser(c) == nil {
		setFlash(c, flashError, "Please log in to continue.")
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// currentUser returns the identity resolved for this request, or nil.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}
