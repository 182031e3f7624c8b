package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pak3430/DDF-Dashboard-sample/internal/metrics"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/cost"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/spec"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Port  int
	Watch bool
}

// Server serves budget and scenario figures for one project file.
type Server struct {
	projectFile string
	opts        Options
	log         zerolog.Logger
	metrics     *metrics.Registry

	mu      sync.RWMutex
	project *spec.Project
}

// New loads the project file and creates a server for it.
func New(projectFile string, opts Options, log zerolog.Logger) (*Server, error) {
	p, err := spec.Load(projectFile)
	if err != nil {
		return nil, err
	}

	s := &Server{
		projectFile: projectFile,
		opts:        opts,
		log:         log,
		metrics:     metrics.NewRegistry(),
		project:     p,
	}
	s.metrics.SetBudget(cost.Compute(p.Parameters, p.Constants))
	return s, nil
}

// Metrics returns the server's metric registry.
func (s *Server) Metrics() *metrics.Registry {
	return s.metrics
}

// Project returns the project currently served. Callers must not modify it.
func (s *Server) Project() *spec.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.project
}

// Reload re-reads the project file. On failure the previous project stays
// active and the error is returned.
func (s *Server) Reload() error {
	p, err := spec.Load(s.projectFile)
	s.metrics.ObserveReload(err)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.projectFile).Msg("project reload failed, keeping previous project")
		return err
	}

	s.mu.Lock()
	s.project = p
	s.mu.Unlock()

	s.metrics.SetBudget(cost.Compute(p.Parameters, p.Constants))
	s.log.Info().Str("path", s.projectFile).Str("project", p.Name).Msg("project reloaded")
	return nil
}

// Router builds the HTTP routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := r.Group("/api")
	api.GET("/project", s.handleProject)
	api.GET("/budget", s.handleBudget)
	api.POST("/budget", s.handleBudgetWhatIf)
	api.GET("/projection", s.handleProjection)
	api.GET("/variants", s.handleVariants)
	api.GET("/scenarios", s.handleScenarios)
	api.POST("/scenarios/select", s.handleSelect)
	api.POST("/scenarios/blend", s.handleBlend)
	api.GET("/validation", s.handleValidation)

	return r
}

// Start serves HTTP until ctx is cancelled, watching the project file for
// changes when enabled.
func (s *Server) Start(ctx context.Context) error {
	if s.opts.Watch {
		w, err := s.newWatcher()
		if err != nil {
			return fmt.Errorf("watching project file: %w", err)
		}
		go s.watchLoop(ctx, w)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.opts.Port),
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info().
		Str("addr", "http://localhost"+srv.Addr).
		Str("project", s.projectFile).
		Bool("watch", s.opts.Watch).
		Msg("drtplanner server starting")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info().Msg("drtplanner server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger counts every request and logs it at debug level.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		s.metrics.ObserveRequest(c.Request.Method, route, status)

		s.log.Debug().
			Str("method", c.Request.Method).
			Str("route", route).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
