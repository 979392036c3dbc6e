package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Flash notices are one-shot status messages carried in a short-lived cookie
// and consumed by the next rendered page.

const flashCookie = "flash"

const (
	flashSuccess = "success"
	flashError   = "error"
	flashInfo    = "info"
)

const flashMaxAge = 300 // seconds; a notice not consumed promptly expires

type flashNotice struct {
	Category string
	Message  string
}

// setFlash queues a notice for the next rendered page.
func setFlash(c *gin.Context, category, message string) {
	c.SetCookie(flashCookie, category+"|"+message, flashMaxAge, "/", "", false, true)
}

// popFlash returns the pending notice, if any, and clears it.
func popFlash(c *gin.Context) *flashNotice {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	category, message, ok := strings.Cut(raw, "|")
	if !ok {
		return &flashNotice{Category: flashInfo, Message: raw}
	}
	return &flashNotice{Category: category, Message: message}
}
