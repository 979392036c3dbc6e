package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"notekeeper/internal/models"
	"notekeeper/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware pair + a gated endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.Use(h.currentUserMiddleware)
	r.GET("/secure", h.requireAuth, func(c *gin.Context) {
		u := currentUser(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": u.ID})
	})
	return r
}

func TestCurrentUserMiddleware_AnonymousStates(t *testing.T) {
	cases := []struct {
		name   string
		cookie string
		// resolveErr simulates bad/expired tokens or a deleted user
		resolveErr error
	}{
		{name: "no cookie", cookie: ""},
		{name: "invalid token", cookie: "garbage", resolveErr: service.ErrInvalidSession},
		{name: "user no longer exists", cookie: "orphan", resolveErr: service.ErrInvalidSession},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{resolveErr: tc.resolveErr}
			s := &service.Service{Authorization: auth, Notes: &mockNotes{}}
			r := newMiddlewareOnlyRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.cookie != "" {
				req = withSession(req, tc.cookie)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusFound {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, http.StatusFound, w.Body.String())
			}
			if loc := w.Header().Get("Location"); loc != "/login" {
				t.Fatalf("redirect: got %q, want /login", loc)
			}
		})
	}
}

func TestCurrentUserMiddleware_SuccessSetsUserAndProceeds(t *testing.T) {
	auth := &mockAuth{resolveUser: &models.User{ID: 123, Username: "wayne"}}
	s := &service.Service{Authorization: auth, Notes: &mockNotes{}}
	r := newMiddlewareOnlyRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodGet, "/secure", nil), "good-token"))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		OK     bool `json:"ok"`
		UserID int  `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.UserID != 123 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastResolvedTok != "good-token" {
		t.Fatalf("ResolveSession got %q, want %q", auth.lastResolvedTok, "good-token")
	}
}

func TestFlashCookie_SetAndPop(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/set", func(c *gin.Context) {
		setFlash(c, flashSuccess, "Note Added!")
		c.Status(http.StatusOK)
	})
	r.GET("/pop", func(c *gin.Context) {
		f := popFlash(c)
		if f == nil {
			c.JSON(http.StatusOK, gin.H{"flash": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"category": f.Category, "message": f.Message})
	})

	// set
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	ck := findCookie(w.Result(), flashCookie)
	if ck == nil {
		t.Fatalf("expected flash cookie to be set")
	}

	// pop consumes it
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pop", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: ck.Value})
	r.ServeHTTP(w, req)

	var out struct {
		Category string `json:"category"`
		Message  string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Category != flashSuccess || out.Message != "Note Added!" {
		t.Fatalf("unexpected flash: %+v", out)
	}
	cleared := findCookie(w.Result(), flashCookie)
	if cleared == nil || cleared.MaxAge >= 0 {
		t.Fatalf("expected flash cookie cleared after pop, got %+v", cleared)
	}

	// popping again without the cookie yields nothing
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pop", nil))
	if body := w.Body.String(); !json.Valid([]byte(body)) || body == "" {
		t.Fatalf("unexpected body: %s", body)
	}
}
