// Package ipc serves the command language over local HTTP so other processes
// (the gesture recogniser, scripts, a remote shell) can drive the launcher.
package ipc

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/StarNumber12046/rocket/internal/command"
	"github.com/StarNumber12046/rocket/internal/events"
	"github.com/StarNumber12046/rocket/internal/gesture"
	"github.com/StarNumber12046/rocket/internal/history"
	"github.com/StarNumber12046/rocket/internal/launcher"
)

// CommandRunner executes command lines.
type CommandRunner interface {
	RunNow(l launcher.Launcher, line string) (string, error)
	Registry() *command.Registry
}

// GestureLauncher is a launcher that can report and fire its bindings.
type GestureLauncher interface {
	launcher.Launcher
	Trigger(action gesture.Action) int
	Actions() []launcher.Binding
}

// HistoryLog records and lists executed command lines.
type HistoryLog interface {
	Exec(ctx context.Context, source history.Source, line string, fn func(string) (string, error)) (string, error)
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

// Config holds IPC server configuration.
type Config struct {
	Listen string
	APIKey string
	// StrictGestures makes POST /gesture reject malformed finger counts.
	StrictGestures bool
}

// Server is the IPC HTTP server.
type Server struct {
	config    Config
	runner    CommandRunner
	launcher  GestureLauncher
	history   HistoryLog
	events    *events.Hub
	logger    *slog.Logger
	server    *http.Server
	startedAt time.Time
}

// New creates a server. history and hub may be nil.
func New(config Config, runner CommandRunner, l GestureLauncher, history HistoryLog, hub *events.Hub, logger *slog.Logger) *Server {
	return &Server{
		config:    config,
		runner:    runner,
		launcher:  l,
		history:   history,
		events:    hub,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// Handler returns the routed handler without starting a listener.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// Start serves until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:        s.config.Listen,
		Handler:     s.setupRoutes(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	s.logger.Info("IPC server starting", "listen", s.config.Listen)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("IPC server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
}

func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Post("/command", s.handleCommand)
		r.Post("/gesture", s.handleGesture)
		r.Get("/bindings", s.handleBindings)
		r.Get("/commands", s.handleCommands)
		r.Get("/history", s.handleHistory)
		r.Get("/events", s.handleEvents)
		r.Get("/events/stream", s.handleEventStream)
	})

	return r
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
