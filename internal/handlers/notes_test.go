package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"notekeeper/internal/models"
	"notekeeper/internal/service"
)

func wayneRouter(notes *mockNotes) (*mockAuth, *service.Service) {
	auth := &mockAuth{resolveUser: &models.User{ID: 3, Username: "wayne", Email: "a@x.com"}}
	return auth, &service.Service{Authorization: auth, Notes: notes}
}

func TestNotesPage_ListsOwnNotes(t *testing.T) {
	notes := &mockNotes{listNotes: []models.Note{
		{ID: 2, Body: "buy milk", CreatedAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), UserID: 3},
		{ID: 1, Body: "older note", CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), UserID: 3},
	}}
	_, s := wayneRouter(notes)
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodGet, "/notes", nil), "ok"))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if notes.lastListOwner != 3 {
		t.Fatalf("expected list for owner 3, got %d", notes.lastListOwner)
	}
	body := w.Body.String()
	if !strings.Contains(body, "buy milk") || !strings.Contains(body, "older note") {
		t.Fatalf("expected both notes in page, body=%s", body)
	}
	if !strings.Contains(body, "/delete/2") {
		t.Fatalf("expected delete link for note 2, body=%s", body)
	}
}

func TestNotesPage_RequiresAuth(t *testing.T) {
	_, s := wayneRouter(&mockNotes{})
	r := newTestRouter(s)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/notes", nil),
		postForm("/notes", "note=hi"),
		httptest.NewRequest(http.MethodGet, "/delete/1", nil),
		httptest.NewRequest(http.MethodGet, "/logout", nil),
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusFound {
			t.Fatalf("%s %s: status=%d, want 302", req.Method, req.URL.Path, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Fatalf("%s %s: expected redirect to /login, got %q", req.Method, req.URL.Path, loc)
		}
	}
}

func TestNotesPage_InvalidSessionIsAnonymous(t *testing.T) {
	notes := &mockNotes{}
	auth := &mockAuth{resolveErr: service.ErrInvalidSession}
	s := &service.Service{Authorization: auth, Notes: notes}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodGet, "/notes", nil), "stale"))

	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("stale session must be anonymous: status=%d loc=%q", w.Code, w.Header().Get("Location"))
	}
	if auth.lastResolvedTok != "stale" {
		t.Fatalf("expected ResolveSession called with cookie value, got %q", auth.lastResolvedTok)
	}
}

func TestAddNoteHandler_Success(t *testing.T) {
	notes := &mockNotes{addNote: &models.Note{ID: 9, Body: "buy milk", UserID: 3}}
	_, s := wayneRouter(notes)
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSession(postForm("/notes", "note=buy+milk"), "ok"))

	if w.Code != http.StatusFound {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/notes" {
		t.Fatalf("expected redirect to /notes, got %q", loc)
	}
	if notes.lastAddOwner != 3 || notes.lastAddBody != "buy milk" {
		t.Fatalf("unexpected add call: owner=%d body=%q", notes.lastAddOwner, notes.lastAddBody)
	}
	ck := findCookie(w.Result(), flashCookie)
	if ck == nil {
		t.Fatalf("expected a flash notice cookie")
	}
}

func TestAddNoteHandler_EmptyBodyFlashesError(t *testing.T) {
	notes := &mockNotes{addErr: service.ErrEmptyNote}
	_, s := wayneRouter(notes)
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSession(postForm("/notes", "note="), "ok"))

	if w.Code != http.StatusFound {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/notes" {
		t.Fatalf("expected redirect back to /notes, got %q", loc)
	}
}

func TestDeleteNoteHandler(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		deleteErr error
		wantCode  int
		wantLoc   string
	}{
		{name: "success", path: "/delete/4", wantCode: http.StatusFound, wantLoc: "/notes"},
		{name: "not found", path: "/delete/404", deleteErr: service.ErrNoteNotFound, wantCode: http.StatusNotFound},
		{name: "foreign note hidden", path: "/delete/4", deleteErr: service.ErrNotOwner, wantCode: http.StatusNotFound},
		{name: "non-numeric id", path: "/delete/abc", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			notes := &mockNotes{deleteErr: tt.deleteErr}
			_, s := wayneRouter(notes)
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodGet, tt.path, nil), "ok"))

			if w.Code != tt.wantCode {
				t.Fatalf("status=%d, want %d (body=%s)", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantLoc != "" {
				if loc := w.Header().Get("Location"); loc != tt.wantLoc {
					t.Fatalf("expected redirect to %q, got %q", tt.wantLoc, loc)
				}
			}
			if tt.name == "success" && (notes.lastDeleteOwner != 3 || notes.lastDeleteNote != 4) {
				t.Fatalf("unexpected delete call: owner=%d note=%d", notes.lastDeleteOwner, notes.lastDeleteNote)
			}
			if tt.name == "non-numeric id" && notes.deleteCalls != 0 {
				t.Fatalf("service must not be called for a non-numeric id")
			}
		})
	}
}
