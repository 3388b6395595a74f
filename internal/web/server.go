package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 10 * time.Second

// Config holds the server settings.
type Config struct {
	Address         string
	Account         string
	MaxRepositories int
}

// Server serves the portfolio page over HTTP.
type Server struct {
	cfg    Config
	router *gin.Engine
	log    *logrus.Logger
}

// NewServer builds the router and registers all routes.
func NewServer(loader Loader, cfg Config, log *logrus.Logger) (*Server, error) {
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(log.Writer()))
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	portfolio := NewPortfolioHandler(loader, cfg.Account, cfg.MaxRepositories, log.WithField("component", "web"))

	router.GET("/", portfolio.Page)
	router.POST("/theme", portfolio.ToggleTheme)
	router.GET("/health", Health)

	api := router.Group("/api")
	{
		api.GET("/projects", portfolio.Projects)
	}

	return &Server{cfg: cfg, router: router, log: log}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("address", s.cfg.Address).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "server failed")
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}
	s.log.Info("server exited")
	return nil
}
