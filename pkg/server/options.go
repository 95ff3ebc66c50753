package server

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/internal/metrics"
	"github.com/goliatone/go-formcheck/pkg/page"
	"github.com/goliatone/go-formcheck/pkg/styles"
	"github.com/goliatone/go-formcheck/pkg/validator"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records session and validation metrics and serves them on
// /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithData overrides the page content.
func WithData(data page.Data) Option {
	return func(s *Server) {
		s.data = data
	}
}

// WithStyles overrides the visual cues applied by each session.
func WithStyles(st styles.Styles) Option {
	return func(s *Server) {
		s.styles = st
	}
}

// WithValidatorOptions forwards options to every session's validator.
func WithValidatorOptions(opts ...validator.Option) Option {
	return func(s *Server) {
		s.validatorOpts = append(s.validatorOpts, opts...)
	}
}

// WithScheduler replaces the timer used for the confirmation reset.
// Callbacks are still delivered through the session loop.
func WithScheduler(sched validator.Scheduler) Option {
	return func(s *Server) {
		if sched != nil {
			s.scheduler = sched
		}
	}
}

// WithAllowedOrigins enables CORS and websocket origin checks for the given
// origins, e.g. "https://app.example".
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = append(s.origins, origins...)
	}
}
