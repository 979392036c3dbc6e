package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"notekeeper/internal/logger"
	"notekeeper/internal/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(loadTemplates())

	// Every request resolves the session cookie to an identity (or anonymous).
	router.Use(h.currentUserMiddleware)

	// Health endpoint
	router.GET("/health", h.health)

	// Public pages
	router.GET("/", h.home)
	h.registerAuthRoutes(router)

	// Pages gated on an authenticated identity
	h.registerNoteRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/login", h.loginPage)
	r.POST("/login", h.login)
	r.GET("/sign_up", h.signupPage)
	r.POST("/sign_up", h.signup)
}

func (h *Handler) registerNoteRoutes(r *gin.Engine) {
	authed := r.Group("/", h.requireAuth)
	{
		authed.GET("/logout", h.logout)
		authed.GET("/notes", h.notesPage)
		authed.POST("/notes", h.addNote)
		authed.GET("/delete/:id", h.deleteNote)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) home(c *gin.Context) {
	h.render(c, http.StatusOK, "home.html", nil)
}

// loadTemplates parses the embedded page templates once at router construction.
func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}

// render draws a page template, injecting the resolved identity and any
// pending flash notice unless the caller already set them.
func (h *Handler) render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["User"]; !ok {
		data["User"] = currentUser(c)
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = popFlash(c)
	}
	c.HTML(code, name, data)
}
