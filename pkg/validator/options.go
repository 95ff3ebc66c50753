package validator

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Option configures a FormValidator.
type Option func(*FormValidator)

// WithScheduler overrides the scheduler used for the submit reset.
func WithScheduler(s Scheduler) Option {
	return func(v *FormValidator) {
		if s != nil {
			v.scheduler = s
		}
	}
}

// WithResetDelay overrides how long the confirmation stays visible.
func WithResetDelay(d time.Duration) Option {
	return func(v *FormValidator) {
		if d > 0 {
			v.delay = d
		}
	}
}

// WithMessages overrides the user facing texts. Blank entries keep their
// defaults.
func WithMessages(m Messages) Option {
	return func(v *FormValidator) {
		v.messages = m.merge(DefaultMessages())
	}
}

// WithFieldLabel sets the name used in the empty-field message for id.
func WithFieldLabel(id FieldID, label string) Option {
	return func(v *FormValidator) {
		label = strings.TrimSpace(label)
		if label == "" {
			return
		}
		if v.labels == nil {
			v.labels = make(map[FieldID]string)
		}
		v.labels[id] = label
	}
}

// WithLogger attaches a logger. Validation outcomes are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(v *FormValidator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithHooks registers activity observers.
func WithHooks(h Hooks) Option {
	return func(v *FormValidator) {
		v.hooks = h
	}
}

// WithResetLocker makes the scheduled reset hold l while it runs. Owners that
// mutate presenter state outside the validator pass the lock guarding it; l
// must always be taken before any validator method is called.
func WithResetLocker(l sync.Locker) Option {
	return func(v *FormValidator) {
		v.resetLock = l
	}
}
