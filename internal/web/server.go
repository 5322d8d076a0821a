// Package web serves the dashboard as a single HTML page.
//
// Routes:
//
//	GET /          the rendered page
//	GET /static/*  embedded stylesheet
//	GET /healthz   liveness probe
//	GET /metrics   Prometheus exposition
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Mr-Dark-debug/zenith/internal/config"
	"github.com/Mr-Dark-debug/zenith/internal/metrics"
	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const pageTemplate = "page.html.tmpl"

// Server is the HTTP surface of the dashboard. The page it serves is
// fixed at construction and shared read-only by all requests.
type Server struct {
	config config.ServerConfig
	logger *zap.Logger
	engine *gin.Engine
	view   pageView

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	wg       sync.WaitGroup
}

// NewServer builds the gin engine for p. A nil logger is replaced by a
// no-op logger.
func NewServer(cfg config.ServerConfig, logger *zap.Logger, p page.Page) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	s := &Server{
		config: cfg,
		logger: logger,
		engine: gin.New(),
		view:   newPageView(p),
	}

	s.engine.SetHTMLTemplate(tmpl)
	s.engine.Use(gin.Recovery())
	s.engine.Use(requestIDMiddleware())
	s.engine.Use(accessLogMiddleware(logger))
	s.engine.Use(metricsMiddleware())

	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.engine.StaticFS("/static", http.FS(static))

	return s, nil
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens on the configured address and serves in the
// background. It returns once the listener is bound.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return errors.New("server already started")
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.config.Addr, err)
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: s.config.ReadTimeout,
		ReadTimeout:       s.config.ReadTimeout,
	}
	s.listener = ln
	s.srv = srv

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server stopped", zap.Error(err))
		}
	}()

	s.logger.Info("zenith web listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Stop shuts the server down gracefully, waiting for in-flight requests
// until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	s.logger.Info("shutting down zenith web")
	err := srv.Shutdown(ctx)
	s.wg.Wait()

	s.mu.Lock()
	s.srv = nil
	s.listener = nil
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) handleIndex(c *gin.Context) {
	metrics.RecordFrame(metrics.SurfaceHTTP)
	c.HTML(http.StatusOK, pageTemplate, s.view)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// shutdownTimeout falls back to five seconds when unset.
func (s *Server) shutdownTimeout() time.Duration {
	if s.config.ShutdownTimeout > 0 {
		return s.config.ShutdownTimeout
	}
	return 5 * time.Second
}

// Run starts the server and blocks until ctx is cancelled, then stops
// it within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()
	return s.Stop(stopCtx)
}
