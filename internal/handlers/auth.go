package handlers

import (
	"errors"
	"net/http"

	"notekeeper/internal/service"

	"github.com/gin-gonic/gin"
)

type signupForm struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Confirm  string `form:"confirm"`
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (h *Handler) signupPage(c *gin.Context) {
	h.render(c, http.StatusOK, "sign_up.html", nil)
}

func (h *Handler) signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	u, err := h.services.SignUp(service.SignupInput{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Confirm:  form.Confirm,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			h.render(c, http.StatusOK, "sign_up.html", gin.H{
				"Errors": verr.Fields,
				"Form":   form,
			})
		case errors.Is(err, service.ErrDuplicateAccount):
			setFlash(c, flashError, "Email already exists. Login instead!")
			c.Redirect(http.StatusFound, "/login")
		default:
			if h.log != nil {
				h.log.Errorw("signup_failed", "email", form.Email, "err", err)
			}
			c.String(http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	// Establish the session right away; a fresh account starts logged in.
	if err := h.startSession(c, u.ID); err != nil {
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	setFlash(c, flashInfo, "Account created successfully.")
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) loginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", nil)
}

func (h *Handler) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	u, err := h.services.Login(service.LoginInput{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			h.render(c, http.StatusOK, "login.html", gin.H{
				"Errors": verr.Fields,
				"Form":   form,
			})
		case errors.Is(err, service.ErrUnknownAccount):
			setFlash(c, flashError, "This email does not exist. Please sign up first.")
			c.Redirect(http.StatusFound, "/sign_up")
		case errors.Is(err, service.ErrInvalidCredentials):
			if h.log != nil {
				h.log.Infow("login_bad_password", "email", form.Email)
			}
			h.render(c, http.StatusOK, "login.html", gin.H{
				"Flash": &flashNotice{Category: flashError, Message: "Incorrect password."},
				"Form":  form,
			})
		default:
			if h.log != nil {
				h.log.Errorw("login_failed", "email", form.Email, "err", err)
			}
			c.String(http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	if err := h.startSession(c, u.ID); err != nil {
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	setFlash(c, flashSuccess, "Logged in successfully.")
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

// startSession issues a signed session token and sets the session cookie.
// The cookie itself lives until the browser closes; expiry is enforced by
// the token.
func (h *Handler) startSession(c *gin.Context, userID int) error {
	token, err := h.services.IssueSession(userID)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("session_issue_failed", "userId", userID, "err", err)
		}
		return err
	}
	c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
	return nil
}
