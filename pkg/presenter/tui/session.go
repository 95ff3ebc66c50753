package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/pkg/validator"
)

const defaultMaxAttempts = 5

// Entry is a submitted pair of normalized values.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Option configures a Session.
type Option func(*Session)

// WithDriver replaces the survey driver.
func WithDriver(d PromptDriver) Option {
	return func(s *Session) {
		if d != nil {
			s.driver = d
		}
	}
}

// WithOutput redirects feedback output.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithTheme sets the feedback prefixes.
func WithTheme(t Theme) Option {
	return func(s *Session) {
		s.theme = t
	}
}

// WithLabels sets the prompt text per field.
func WithLabels(labels map[validator.FieldID]string) Option {
	return func(s *Session) {
		for id, label := range labels {
			if label != "" {
				s.labels[id] = label
			}
		}
	}
}

// WithHeading sets the line printed before each round. Empty disables it.
func WithHeading(heading string) Option {
	return func(s *Session) {
		s.heading = heading
	}
}

// WithMaxAttempts bounds how many times a field is re-prompted. Zero or less
// means unbounded.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		s.maxAttempts = n
	}
}

// WithInlineValidation rejects bad answers inside the prompt itself instead of
// printing feedback and asking again.
func WithInlineValidation(enabled bool) Option {
	return func(s *Session) {
		s.inline = enabled
	}
}

// WithRepeat asks whether to validate another entry after each reset.
func WithRepeat(enabled bool) Option {
	return func(s *Session) {
		s.repeat = enabled
	}
}

// WithHooks observes validator activity. Use it instead of
// validator.WithHooks, which the session overrides.
func WithHooks(h validator.Hooks) Option {
	return func(s *Session) {
		s.hooks = h
	}
}

// WithValidatorOptions forwards options to the validator.
func WithValidatorOptions(opts ...validator.Option) Option {
	return func(s *Session) {
		s.validatorOpts = append(s.validatorOpts, opts...)
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session prompts for each field until it validates, submits, and waits for
// the reset before finishing or starting over.
type Session struct {
	driver        PromptDriver
	out           io.Writer
	theme         Theme
	labels        map[validator.FieldID]string
	heading       string
	maxAttempts   int
	inline        bool
	repeat        bool
	validatorOpts []validator.Option
	hooks         validator.Hooks
	logger        *zap.Logger

	fields    map[validator.FieldID]*FieldPresenter
	submit    *SubmitControl
	notice    *Notice
	validator *validator.FormValidator
	resets    chan struct{}
}

// NewSession builds a session and its validator.
func NewSession(options ...Option) (*Session, error) {
	s := &Session{
		driver: NewSurveyDriver(),
		out:    os.Stdout,
		theme:  PlainTheme(),
		labels: map[validator.FieldID]string{
			validator.FieldName:  "Name",
			validator.FieldEmail: "Email",
		},
		heading:     "Contact form",
		maxAttempts: defaultMaxAttempts,
		logger:      zap.NewNop(),
		resets:      make(chan struct{}, 1),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	s.fields = map[validator.FieldID]*FieldPresenter{
		validator.FieldName:  NewFieldPresenter(s.out, s.theme, s.labels[validator.FieldName]),
		validator.FieldEmail: NewFieldPresenter(s.out, s.theme, s.labels[validator.FieldEmail]),
	}
	s.submit = &SubmitControl{}
	s.notice = NewNotice(s.out, s.theme)

	hooks := s.hooks
	next := hooks.OnReset
	hooks.OnReset = func() {
		if next != nil {
			next()
		}
		select {
		case s.resets <- struct{}{}:
		default:
		}
	}
	opts := append([]validator.Option{validator.WithLogger(s.logger)}, s.validatorOpts...)
	opts = append(opts, validator.WithHooks(hooks))

	v, err := validator.New(
		s.fields[validator.FieldName],
		s.fields[validator.FieldEmail],
		s.submit,
		s.notice,
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("tui: build validator: %w", err)
	}
	s.validator = v
	return s, nil
}

// Validator exposes the underlying validator.
func (s *Session) Validator() *validator.FormValidator {
	return s.validator
}

// Run drives the prompts until the user declines another round. It returns
// every submitted entry.
func (s *Session) Run(ctx context.Context) ([]Entry, error) {
	defer s.validator.Close()

	var entries []Entry
	for {
		entry, submitted, err := s.round(ctx)
		if err != nil {
			return entries, err
		}
		if !submitted {
			return entries, nil
		}
		entries = append(entries, entry)

		if !s.repeat {
			return entries, nil
		}
		again, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Validate another entry?", Default: false})
		if err != nil {
			return entries, err
		}
		if !again {
			return entries, nil
		}
	}
}

func (s *Session) round(ctx context.Context) (Entry, bool, error) {
	if s.heading != "" {
		if err := s.driver.Info(ctx, s.heading); err != nil {
			return Entry{}, false, err
		}
	}
	for _, id := range validator.Fields {
		if err := s.prompt(ctx, id); err != nil {
			return Entry{}, false, err
		}
	}

	ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Submit the form?", Default: true})
	if err != nil {
		return Entry{}, false, err
	}
	if !ok {
		return Entry{}, false, nil
	}

	entry := s.entry()
	if err := s.validator.OnSubmit(); err != nil {
		return Entry{}, false, fmt.Errorf("tui: submit: %w", err)
	}
	s.logger.Debug("entry submitted")

	select {
	case <-s.resets:
	case <-ctx.Done():
		return entry, true, ctx.Err()
	}
	return entry, true, nil
}

func (s *Session) prompt(ctx context.Context, id validator.FieldID) error {
	cfg := InputConfig{Message: s.labels[id]}
	if s.inline {
		cfg.Validator = func(raw string) error {
			return s.validator.Check(id, raw)
		}
	}

	for attempt := 1; ; attempt++ {
		raw, err := s.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		state, err := s.validator.OnFieldInput(id, raw)
		if err != nil {
			return err
		}
		if state.Valid {
			return nil
		}
		s.logger.Debug("field rejected",
			zap.String("field", string(id)),
			zap.Stringer("phase", state.Phase),
			zap.Int("attempt", attempt),
		)
		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, id)
		}
	}
}

func (s *Session) entry() Entry {
	var e Entry
	if state, ok := s.validator.State(validator.FieldName); ok {
		e.Name = state.Value
	}
	if state, ok := s.validator.State(validator.FieldEmail); ok {
		e.Email = state.Value
	}
	return e
}
