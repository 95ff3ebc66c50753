package validator

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type field struct {
	state     FieldState
	rule      Rule
	presenter FieldPresenter
}

// FormValidator validates the name and email fields and gates the submit
// control. It is safe for concurrent use; presenter calls happen while the
// validator holds its lock.
type FormValidator struct {
	mu sync.Mutex

	fields map[FieldID]*field
	submit SubmitControl
	notice Notice

	scheduler Scheduler
	delay     time.Duration
	messages  Messages
	labels    map[FieldID]string
	logger    *zap.Logger
	hooks     Hooks
	resetLock sync.Locker

	pending Task
	seq     uint64
}

// New binds a validator to the presenters of the name and email fields, the
// submit control and the confirmation notice.
func New(name, email FieldPresenter, submit SubmitControl, notice Notice, options ...Option) (*FormValidator, error) {
	switch {
	case name == nil:
		return nil, fmt.Errorf("%w: name field", ErrMissingPresenter)
	case email == nil:
		return nil, fmt.Errorf("%w: email field", ErrMissingPresenter)
	case submit == nil:
		return nil, fmt.Errorf("%w: submit control", ErrMissingPresenter)
	case notice == nil:
		return nil, fmt.Errorf("%w: notice", ErrMissingPresenter)
	}

	v := &FormValidator{
		fields: map[FieldID]*field{
			FieldName: {
				state:     FieldState{ID: FieldName},
				rule:      NameRule(),
				presenter: name,
			},
			FieldEmail: {
				state:     FieldState{ID: FieldEmail},
				rule:      EmailRule(),
				presenter: email,
			},
		},
		submit:    submit,
		notice:    notice,
		scheduler: TimerScheduler{},
		delay:     DefaultResetDelay,
		messages:  DefaultMessages(),
		logger:    zap.NewNop(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}

	return v, nil
}

// Check evaluates raw against the rules of id without touching any state. It
// returns nil for accepted input and a *Failure otherwise.
func (v *FormValidator) Check(id FieldID, raw string) error {
	f, ok := v.fields[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	if failure := v.evaluate(f, raw); failure != nil {
		return failure
	}
	return nil
}

// OnFieldInput handles an input event on id carrying the field's full text.
// Validation failures are rendered through the field presenter and reflected
// in the returned state; the error is reserved for unknown fields.
func (v *FormValidator) OnFieldInput(id FieldID, raw string) (FieldState, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	f, ok := v.fields[id]
	if !ok {
		return FieldState{}, fmt.Errorf("%w: %q", ErrUnknownField, id)
	}

	f.state.RawValue = raw

	if failure := v.evaluate(f, raw); failure != nil {
		f.state.Valid = false
		f.state.Phase = failure.phase()
		f.presenter.ShowError(failure.Message)
		v.submit.SetEnabled(false)
		v.logger.Debug("field rejected",
			zap.String("field", string(id)),
			zap.String("kind", string(failure.Kind)),
		)
		v.observeValidate(id, f.state.Phase)
		return f.state, nil
	}

	f.presenter.ClearError()
	f.state.Value = Normalize(raw)
	f.state.Valid = true
	f.state.Phase = PhaseValid
	v.updateSubmitEnablement()

	v.logger.Debug("field accepted", zap.String("field", string(id)))
	v.observeValidate(id, f.state.Phase)
	return f.state, nil
}

// OnSubmit shows the confirmation notice and schedules the form reset. A reset
// that is still pending is cancelled and replaced. The submit control is left
// as it is once the reset runs.
func (v *FormValidator) OnSubmit() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.submit.Enabled() {
		return ErrSubmitDisabled
	}

	if v.pending != nil {
		v.pending.Cancel()
		v.pending = nil
	}

	v.notice.Show(v.messages.Confirmation)

	v.seq++
	seq := v.seq
	v.pending = v.scheduler.Schedule(v.delay, func() {
		v.reset(seq)
	})

	v.logger.Debug("form submitted", zap.Duration("reset_in", v.delay))
	if v.hooks.OnSubmit != nil {
		v.hooks.OnSubmit()
	}
	return nil
}

// State returns the current state of id.
func (v *FormValidator) State(id FieldID) (FieldState, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	f, ok := v.fields[id]
	if !ok {
		return FieldState{}, false
	}
	return f.state, true
}

// States returns the state of every field in document order.
func (v *FormValidator) States() []FieldState {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]FieldState, 0, len(Fields))
	for _, id := range Fields {
		out = append(out, v.fields[id].state)
	}
	return out
}

// SubmitEnabled reports whether the submit control currently accepts
// interaction.
func (v *FormValidator) SubmitEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.submit.Enabled()
}

// Pending reports whether a submit reset is scheduled.
func (v *FormValidator) Pending() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pending != nil
}

// Close cancels a pending reset. The notice, if shown, stays visible.
func (v *FormValidator) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.pending != nil {
		v.pending.Cancel()
		v.pending = nil
	}
	v.seq++
}

func (v *FormValidator) evaluate(f *field, raw string) *Failure {
	if IsBlank(raw) {
		return &Failure{
			Kind:    KindEmptyField,
			Field:   f.state.ID,
			Message: strings.ReplaceAll(v.messages.Empty, "{name}", v.label(f.state.ID)),
		}
	}
	if f.rule.Match(raw) {
		return nil
	}

	message := v.messages.InvalidName
	if f.rule.Kind == KindInvalidEmailFormat {
		message = v.messages.InvalidEmail
	}
	return &Failure{Kind: f.rule.Kind, Field: f.state.ID, Message: message}
}

// updateSubmitEnablement enables submit iff every field holds a non-empty
// stored value. A value kept from an earlier accepted input counts even when
// the field has failed since.
func (v *FormValidator) updateSubmitEnablement() {
	enabled := true
	for _, id := range Fields {
		if v.fields[id].state.Value == "" {
			enabled = false
			break
		}
	}
	v.submit.SetEnabled(enabled)
}

func (v *FormValidator) reset(seq uint64) {
	if v.resetLock != nil {
		v.resetLock.Lock()
		defer v.resetLock.Unlock()
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	if seq != v.seq || v.pending == nil {
		return
	}
	v.pending = nil

	v.notice.Hide()
	for _, id := range Fields {
		f := v.fields[id]
		f.state = FieldState{ID: id}
		f.presenter.Reset()
	}

	v.logger.Debug("form reset")
	if v.hooks.OnReset != nil {
		v.hooks.OnReset()
	}
}

func (v *FormValidator) label(id FieldID) string {
	if label, ok := v.labels[id]; ok {
		return label
	}
	return string(id)
}

func (v *FormValidator) observeValidate(id FieldID, phase Phase) {
	if v.hooks.OnValidate != nil {
		v.hooks.OnValidate(id, phase)
	}
}
