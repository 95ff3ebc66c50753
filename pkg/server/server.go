package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/internal/metrics"
	"github.com/goliatone/go-formcheck/pkg/page"
	"github.com/goliatone/go-formcheck/pkg/styles"
	"github.com/goliatone/go-formcheck/pkg/validator"
)

// Server hosts the form page and its live validation sessions.
type Server struct {
	engine        *page.Engine
	data          page.Data
	styles        styles.Styles
	validatorOpts []validator.Option
	scheduler     validator.Scheduler
	origins       []string
	logger        *zap.Logger
	metrics       *metrics.Metrics

	router chi.Router
}

// New builds a server rendering pages with engine.
func New(engine *page.Engine, options ...Option) (*Server, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	s := &Server{
		engine:    engine,
		data:      page.DefaultData(),
		styles:    styles.Default(),
		scheduler: validator.TimerScheduler{},
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	s.router = s.routes()
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(recoverer(s.logger))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}
	r.Use(requestLogger(s.logger))
	if len(s.origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.origins,
			AllowedMethods: []string{http.MethodGet},
		}))
	}

	r.Get("/", s.handlePage)
	r.Get("/healthz", s.handleHealth)
	r.Get(s.socketPath(), s.handleSocket)

	assets := strings.TrimRight(s.data.AssetsPath, "/")
	if assets == "" {
		assets = "/assets"
	}
	r.Handle(assets+"/*", http.StripPrefix(assets+"/", http.FileServer(http.FS(page.AssetsFS()))))

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}
	return r
}

func (s *Server) socketPath() string {
	if s.data.SocketPath == "" {
		return "/ws"
	}
	return s.data.SocketPath
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	html, err := s.engine.RenderPage(s.data)
	if err != nil {
		s.logger.Error("render page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// originPatterns turns allowed origins into host patterns for the websocket
// origin check.
func (s *Server) originPatterns() []string {
	var patterns []string
	for _, origin := range s.origins {
		if origin == "*" {
			patterns = append(patterns, "*")
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			patterns = append(patterns, origin)
			continue
		}
		patterns = append(patterns, u.Host)
	}
	return patterns
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully within timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, timeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
