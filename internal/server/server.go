// Package server exposes the dashboard page and the read-only JSON API over
// HTTP. The dataset is loaded once at startup and never mutated.
package server

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wattlab/wattboard/internal/render"
	"github.com/wattlab/wattboard/pkg/models"
)

//go:embed all:web
var webFS embed.FS

// Server is the HTTP server behind the dashboard
type Server struct {
	router *gin.Engine
	ds     *models.Dataset
}

// New creates the server around an already validated dataset
func New(ds *models.Dataset, devMode bool) (*Server, error) {
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	tmpl, err := template.ParseFS(webFS, "web/templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		router: router,
		ds:     ds,
	}

	s.setupRoutes()

	return s, nil
}

// setupRoutes wires the page, static assets and the API group
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Dashboard page, rendered from the pure view model
	s.router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", render.BuildPage(s.ds))
	})

	// Static assets
	staticSub, _ := fs.Sub(webFS, "web/static")
	s.router.StaticFS("/static", http.FS(staticSub))

	// API routes
	handler := newHandler(s.ds)
	api := s.router.Group("/api")
	{
		handler.RegisterRoutes(api)
	}
}

// Run starts the server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the gin engine (used for tests)
func (s *Server) Router() *gin.Engine {
	return s.router
}
