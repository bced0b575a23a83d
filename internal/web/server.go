// Package web serves the posts and users pages as HTML.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/fivetwenty-io/jph/internal/constants"
	"github.com/fivetwenty-io/jph/pkg/jph"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ErrClientRequired is returned when New is called without an API client.
var ErrClientRequired = errors.New("web server requires an API client")

// Options configures a Server.
type Options struct {
	// PostsLimit and UsersLimit cap the pages; negative selects the page default.
	PostsLimit int
	UsersLimit int
	// RequestTimeout bounds each request, including the upstream fetch. Zero disables it.
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

// Server renders list pages backed by a jph.Client.
type Server struct {
	client    jph.Client
	logger    *zap.Logger
	opts      Options
	templates map[string]*template.Template
}

// New parses the embedded templates and returns a server.
func New(client jph.Client, opts Options) (*Server, error) {
	if client == nil {
		return nil, ErrClientRequired
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	templates := make(map[string]*template.Template, 2)

	for _, name := range []string{"posts", "users"} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.tmpl", "templates/"+name+".tmpl")
		if err != nil {
			return nil, fmt.Errorf("parsing %s templates: %w", name, err)
		}

		templates[name] = tmpl
	}

	return &Server{
		client:    client,
		logger:    logger,
		opts:      opts,
		templates: templates,
	}, nil
}

// Routes returns the router with middleware installed.
func (s *Server) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(s.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(constants.DefaultCompressLevel))

	if s.opts.RequestTimeout > 0 {
		router.Use(middleware.Timeout(s.opts.RequestTimeout))
	}

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/", s.postsHandler())
	router.Get("/users", s.usersHandler())

	return router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	return s.Serve(ctx, listener)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: constants.ServerReadHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("web listening", zap.String("addr", listener.Addr().String()))
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	s.logger.Info("web stopped")

	return nil
}
