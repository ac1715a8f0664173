package http

import (
	"embed"
	"html"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prabinsunar/library-app/internal/security"
)

//go:embed templates/*.html
var templateFS embed.FS

// templateFuncs are available to every page. Stored text is HTML-escaped
// once already, so templates unescape it and let html/template escape it again.
var templateFuncs = template.FuncMap{
	"unescape": html.UnescapeString,
}

func parseTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.Use(Recovery())

	// Apply security headers to all responses
	router.Use(security.SecurityHeadersMiddleware())

	if cfg.RateLimiter != nil {
		router.Use(cfg.RateLimiter.Middleware())
	}

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(security.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by CSRF's request replacement
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	router.SetHTMLTemplate(parseTemplates())
	router.NoRoute(func(c *gin.Context) {
		renderError(c, http.StatusNotFound, errPageNotFound)
	})

	p := page{sessions: cfg.SessionManager}
	health := NewHealthController(cfg.Database, cfg.Version)
	index := NewIndexController(cfg.Catalog, p, cfg.Integrity != nil)
	authors := NewAuthorsController(cfg.Catalog, p)
	genres := NewGenresController(cfg.Catalog, p)
	books := NewBooksController(cfg.Catalog, p)
	instances := NewBookInstancesController(cfg.Catalog, p)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog")
	})

	catalogRoutes := router.Group("/catalog")
	catalogRoutes.GET("", index.Home)

	catalogRoutes.GET("/authors", authors.List)
	catalogRoutes.GET("/author/create", authors.CreateForm)
	catalogRoutes.POST("/author/create", authors.Create)
	catalogRoutes.GET("/author/:id", authors.Detail)
	catalogRoutes.GET("/author/:id/delete", authors.DeleteForm)
	catalogRoutes.POST("/author/:id/delete", authors.Delete)
	catalogRoutes.GET("/author/:id/update", authors.UpdateForm)
	catalogRoutes.POST("/author/:id/update", authors.Update)

	catalogRoutes.GET("/genres", genres.List)
	catalogRoutes.GET("/genre/create", genres.CreateForm)
	catalogRoutes.POST("/genre/create", genres.Create)
	catalogRoutes.GET("/genre/:id", genres.Detail)
	catalogRoutes.GET("/genre/:id/delete", genres.DeleteForm)
	catalogRoutes.POST("/genre/:id/delete", genres.Delete)
	catalogRoutes.GET("/genre/:id/update", genres.UpdateForm)
	catalogRoutes.POST("/genre/:id/update", genres.Update)

	catalogRoutes.GET("/books", books.List)
	catalogRoutes.GET("/book/create", books.CreateForm)
	catalogRoutes.POST("/book/create", books.Create)
	catalogRoutes.GET("/book/:id", books.Detail)
	catalogRoutes.GET("/book/:id/delete", books.DeleteForm)
	catalogRoutes.POST("/book/:id/delete", books.Delete)
	catalogRoutes.GET("/book/:id/update", books.UpdateForm)
	catalogRoutes.POST("/book/:id/update", books.Update)

	catalogRoutes.GET("/bookinstances", instances.List)
	catalogRoutes.GET("/bookinstance/create", instances.CreateForm)
	catalogRoutes.POST("/bookinstance/create", instances.Create)
	catalogRoutes.GET("/bookinstance/:id", instances.Detail)
	catalogRoutes.GET("/bookinstance/:id/delete", instances.DeleteForm)
	catalogRoutes.POST("/bookinstance/:id/delete", instances.Delete)
	catalogRoutes.GET("/bookinstance/:id/update", instances.UpdateForm)
	catalogRoutes.POST("/bookinstance/:id/update", instances.Update)

	// Integrity check trigger (if a queue or inline runner is available)
	if cfg.Integrity != nil {
		maintenance := NewMaintenanceController(cfg.Integrity, p)
		catalogRoutes.POST("/maintenance/integrity", maintenance.CheckIntegrity)
	}

	return router
}
