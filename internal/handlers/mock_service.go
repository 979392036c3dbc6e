package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"notekeeper/internal/models"
	"notekeeper/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser  *models.User
	signUpErr   error
	loginUser   *models.User
	loginErr    error
	issueToken  string
	issueErr    error
	resolveUser *models.User
	resolveErr  error

	lastSignUp      service.SignupInput
	lastLogin       service.LoginInput
	lastIssuedID    int
	lastResolvedTok string
	issueCalls      int
}

func (m *mockAuth) SignUp(in service.SignupInput) (*models.User, error) {
	m.lastSignUp = in
	return m.signUpUser, m.signUpErr
}

func (m *mockAuth) Login(in service.LoginInput) (*models.User, error) {
	m.lastLogin = in
	return m.loginUser, m.loginErr
}

func (m *mockAuth) IssueSession(userID int) (string, error) {
	m.issueCalls++
	m.lastIssuedID = userID
	return m.issueToken, m.issueErr
}

func (m *mockAuth) ResolveSession(token string) (*models.User, error) {
	m.lastResolvedTok = token
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	return m.resolveUser, nil
}

type mockNotes struct {
	addNote   *models.Note
	addErr    error
	listNotes []models.Note
	listErr   error
	deleteErr error

	lastAddOwner    int
	lastAddBody     string
	lastListOwner   int
	lastDeleteOwner int
	lastDeleteNote  int
	addCalls        int
	deleteCalls     int
}

func (m *mockNotes) Add(ctx context.Context, ownerID int, body string) (*models.Note, error) {
	m.addCalls++
	m.lastAddOwner = ownerID
	m.lastAddBody = body
	return m.addNote, m.addErr
}

func (m *mockNotes) ListByOwner(ctx context.Context, ownerID int) ([]models.Note, error) {
	m.lastListOwner = ownerID
	return m.listNotes, m.listErr
}

func (m *mockNotes) Delete(ctx context.Context, ownerID, noteID int) error {
	m.deleteCalls++
	m.lastDeleteOwner = ownerID
	m.lastDeleteNote = noteID
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// sessionCookie value "ok" resolves to the mock's user in these tests.
func withSession(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	return req
}

func postForm(path, form string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
