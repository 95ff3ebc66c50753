package validator_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/testsupport"
	"github.com/goliatone/go-formcheck/pkg/validator"
)

type fixture struct {
	name      *testsupport.FieldPresenter
	email     *testsupport.FieldPresenter
	submit    *testsupport.Submit
	notice    *testsupport.Notice
	scheduler *testsupport.ManualScheduler
	v         *validator.FormValidator
}

func newFixture(t *testing.T, options ...validator.Option) *fixture {
	t.Helper()

	f := &fixture{
		name:      &testsupport.FieldPresenter{},
		email:     &testsupport.FieldPresenter{},
		submit:    &testsupport.Submit{},
		notice:    &testsupport.Notice{},
		scheduler: testsupport.NewManualScheduler(),
	}
	opts := append([]validator.Option{validator.WithScheduler(f.scheduler)}, options...)
	v, err := validator.New(f.name, f.email, f.submit, f.notice, opts...)
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	f.v = v
	return f
}

func (f *fixture) input(t *testing.T, id validator.FieldID, raw string) validator.FieldState {
	t.Helper()
	state, err := f.v.OnFieldInput(id, raw)
	if err != nil {
		t.Fatalf("input %s=%q: %v", id, raw, err)
	}
	return state
}

func TestNew_RequiresCollaborators(t *testing.T) {
	p := &testsupport.FieldPresenter{}
	_, err := validator.New(p, nil, &testsupport.Submit{}, &testsupport.Notice{})
	if !errors.Is(err, validator.ErrMissingPresenter) {
		t.Fatalf("expected ErrMissingPresenter, got %v", err)
	}
}

func TestOnFieldInput_ValidNameNormalizes(t *testing.T) {
	f := newFixture(t)

	for _, raw := range []string{"Ana ", "An", "ANA MARIA", "An9", "bo-"} {
		state := f.input(t, validator.FieldName, raw)
		want := validator.FieldState{
			ID:       validator.FieldName,
			RawValue: raw,
			Value:    validator.Normalize(raw),
			Valid:    true,
			Phase:    validator.PhaseValid,
		}
		if diff := cmp.Diff(want, state); diff != "" {
			t.Fatalf("state mismatch for %q (-want +got):\n%s", raw, diff)
		}
		if msg, styled := f.name.Snapshot(); msg != "" || styled != "success" {
			t.Fatalf("expected cleared error for %q, got %q/%q", raw, msg, styled)
		}
	}
}

func TestOnFieldInput_EmptyInputDisablesSubmit(t *testing.T) {
	for _, id := range validator.Fields {
		for _, raw := range []string{"", " ", "\t\n  "} {
			f := newFixture(t)
			f.submit.SetEnabled(true)

			state := f.input(t, id, raw)
			if state.Valid || state.Phase != validator.PhaseEmpty {
				t.Fatalf("%s=%q: expected empty phase, got %+v", id, raw, state)
			}
			if f.submit.Enabled() {
				t.Fatalf("%s=%q: submit should be disabled", id, raw)
			}
			presenter := f.name
			if id == validator.FieldEmail {
				presenter = f.email
			}
			want := "field " + string(id) + " must not be empty"
			if msg, _ := presenter.Snapshot(); msg != want {
				t.Fatalf("%s=%q: message %q, want %q", id, raw, msg, want)
			}
		}
	}
}

func TestOnFieldInput_EmptyMessageUsesFieldLabel(t *testing.T) {
	f := newFixture(t, validator.WithFieldLabel(validator.FieldName, "full_name"))
	f.input(t, validator.FieldName, "  ")
	if msg, _ := f.name.Snapshot(); msg != "field full_name must not be empty" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestOnFieldInput_NameRule(t *testing.T) {
	cases := map[string]bool{
		"A":    false,
		"An":   true,
		"An9":  true,
		"9An":  false,
		" Ana": false,
		"Ñu":   false,
	}
	for raw, valid := range cases {
		f := newFixture(t)
		state := f.input(t, validator.FieldName, raw)
		if state.Valid != valid {
			t.Fatalf("name %q: valid=%v, want %v", raw, state.Valid, valid)
		}
		if !valid {
			if msg, styled := f.name.Snapshot(); msg != "name type is not valid" || styled != "error" {
				t.Fatalf("name %q: unexpected presenter state %q/%q", raw, msg, styled)
			}
			if state.Phase != validator.PhaseFormatInvalid {
				t.Fatalf("name %q: phase %s", raw, state.Phase)
			}
		}
	}
}

func TestOnFieldInput_EmailRule(t *testing.T) {
	cases := map[string]bool{
		"ana@x.co":         true,
		"ana.maria@x.co":   true,
		"ana+tag@mail.org": true,
		"ana@sub.x.com":    true,
		"a/b@x.co":         true,
		"a-b@x.co":         false,
		"ana@@x.co":        false,
		"ana@x.c":          false,
		"ana@x":            false,
		"ana@x.co ":        false,
		"@x.co":            false,
	}
	for raw, valid := range cases {
		f := newFixture(t)
		state := f.input(t, validator.FieldEmail, raw)
		if state.Valid != valid {
			t.Fatalf("email %q: valid=%v, want %v", raw, state.Valid, valid)
		}
		if !valid {
			if msg, _ := f.email.Snapshot(); msg != "email type is not valid" {
				t.Fatalf("email %q: unexpected message %q", raw, msg)
			}
		}
	}
}

func TestCheck_ReturnsTypedFailures(t *testing.T) {
	f := newFixture(t)

	if err := f.v.Check(validator.FieldEmail, "ana@@x.co"); !errors.Is(err, validator.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if err := f.v.Check(validator.FieldName, "A"); !errors.Is(err, validator.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if err := f.v.Check(validator.FieldName, " "); !errors.Is(err, validator.ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField, got %v", err)
	}
	if err := f.v.Check(validator.FieldName, "Ana"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	var failure *validator.Failure
	if err := f.v.Check(validator.FieldEmail, ""); !errors.As(err, &failure) || failure.Field != validator.FieldEmail {
		t.Fatalf("expected failure for email, got %v", err)
	}
	if _, ok := f.v.State(validator.FieldName); !ok {
		t.Fatalf("expected name state")
	}
	if state, _ := f.v.State(validator.FieldName); state.Phase != validator.PhaseUntouched {
		t.Fatalf("check must not mutate state, got %s", state.Phase)
	}
}

func TestOnFieldInput_UnknownField(t *testing.T) {
	f := newFixture(t)
	if _, err := f.v.OnFieldInput("phone", "123"); !errors.Is(err, validator.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSubmitEnablement(t *testing.T) {
	f := newFixture(t)

	f.input(t, validator.FieldName, "Ana ")
	if f.submit.Enabled() {
		t.Fatalf("submit enabled with only the name filled")
	}
	f.input(t, validator.FieldEmail, "ana@x.co")
	if !f.submit.Enabled() {
		t.Fatalf("submit should be enabled once both fields are valid")
	}
	f.input(t, validator.FieldEmail, "")
	if f.submit.Enabled() {
		t.Fatalf("submit should be disabled after clearing email")
	}
}

func TestSubmitEnablement_StoredValueCountsAfterFailure(t *testing.T) {
	f := newFixture(t)

	f.input(t, validator.FieldName, "Ana")
	f.input(t, validator.FieldEmail, "ana@x.co")
	f.input(t, validator.FieldName, "A")
	if f.submit.Enabled() {
		t.Fatalf("a failing input disables submit")
	}

	f.input(t, validator.FieldEmail, "bob@x.co")
	if !f.submit.Enabled() {
		t.Fatalf("submit should be enabled from the stored name value")
	}
	state, _ := f.v.State(validator.FieldName)
	if state.Value != "ana" || state.Valid {
		t.Fatalf("expected last accepted value kept but marked invalid, got %+v", state)
	}
}

func TestSubmitEnablement_NeverStoredStaysDisabled(t *testing.T) {
	f := newFixture(t)

	f.input(t, validator.FieldName, "A")
	f.input(t, validator.FieldEmail, "ana@x.co")
	if f.submit.Enabled() {
		t.Fatalf("submit must stay disabled until a name has been accepted")
	}
}

func TestOnSubmit_ResetsAfterDelay(t *testing.T) {
	f := newFixture(t)
	f.input(t, validator.FieldName, "Ana")
	f.input(t, validator.FieldEmail, "ana@x.co")

	if err := f.v.OnSubmit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if f.notice.Current() != "form validated" {
		t.Fatalf("expected confirmation notice, got %q", f.notice.Current())
	}

	f.scheduler.Advance(validator.DefaultResetDelay - time.Millisecond)
	if f.notice.Current() == "" {
		t.Fatalf("notice hidden before the delay elapsed")
	}

	f.scheduler.Advance(time.Millisecond)
	if f.notice.Current() != "" {
		t.Fatalf("notice still visible after the delay")
	}

	want := []validator.FieldState{
		{ID: validator.FieldName},
		{ID: validator.FieldEmail},
	}
	if diff := cmp.Diff(want, f.v.States()); diff != "" {
		t.Fatalf("states mismatch (-want +got):\n%s", diff)
	}
	for _, p := range []*testsupport.FieldPresenter{f.name, f.email} {
		if _, styled := p.Snapshot(); styled != "" || p.Resets != 1 {
			t.Fatalf("expected default styling after reset, got %q (%d resets)", styled, p.Resets)
		}
	}

	// The submit control is not re-disabled by the reset.
	if !f.submit.Enabled() {
		t.Fatalf("submit control changed by the reset")
	}
	if f.v.Pending() {
		t.Fatalf("no reset should be pending")
	}
}

func TestOnSubmit_RejectedWhileDisabled(t *testing.T) {
	f := newFixture(t)
	if err := f.v.OnSubmit(); !errors.Is(err, validator.ErrSubmitDisabled) {
		t.Fatalf("expected ErrSubmitDisabled, got %v", err)
	}
	if len(f.notice.Shown) != 0 {
		t.Fatalf("notice shown for a disabled submit")
	}
}

func TestOnSubmit_ResubmitReplacesPendingReset(t *testing.T) {
	f := newFixture(t)
	f.input(t, validator.FieldName, "Ana")
	f.input(t, validator.FieldEmail, "ana@x.co")

	if err := f.v.OnSubmit(); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	f.scheduler.Advance(2 * time.Second)
	if err := f.v.OnSubmit(); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if f.scheduler.Pending() != 1 {
		t.Fatalf("expected a single pending reset, got %d", f.scheduler.Pending())
	}

	f.scheduler.Advance(time.Second)
	if f.notice.Current() == "" {
		t.Fatalf("the replaced reset must not run")
	}

	f.scheduler.Advance(2 * time.Second)
	if f.notice.Current() != "" || f.notice.Hidden != 1 {
		t.Fatalf("expected exactly one reset, hidden=%d", f.notice.Hidden)
	}
	if f.name.Resets != 1 || f.email.Resets != 1 {
		t.Fatalf("expected one reset per field, got %d/%d", f.name.Resets, f.email.Resets)
	}
}

func TestClose_CancelsPendingReset(t *testing.T) {
	f := newFixture(t)
	f.input(t, validator.FieldName, "Ana")
	f.input(t, validator.FieldEmail, "ana@x.co")
	if err := f.v.OnSubmit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	f.v.Close()
	f.scheduler.Advance(validator.DefaultResetDelay)

	if f.name.Resets != 0 {
		t.Fatalf("reset ran after Close")
	}
}

func TestOptions_MessagesDelayAndHooks(t *testing.T) {
	var validated []string
	var submits, resets int

	f := newFixture(t,
		validator.WithMessages(validator.Messages{InvalidName: "bad name", Confirmation: "ok!"}),
		validator.WithResetDelay(time.Second),
		validator.WithHooks(validator.Hooks{
			OnValidate: func(id validator.FieldID, phase validator.Phase) {
				validated = append(validated, string(id)+":"+phase.String())
			},
			OnSubmit: func() { submits++ },
			OnReset:  func() { resets++ },
		}),
	)

	f.input(t, validator.FieldName, "1")
	if msg, _ := f.name.Snapshot(); msg != "bad name" {
		t.Fatalf("custom message not used, got %q", msg)
	}
	f.input(t, validator.FieldName, "Ana")
	f.input(t, validator.FieldEmail, "")
	f.input(t, validator.FieldEmail, "ana@x.co")
	if msg, _ := f.email.Snapshot(); msg != "" {
		t.Fatalf("expected cleared email error, got %q", msg)
	}

	if err := f.v.OnSubmit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if f.notice.Current() != "ok!" {
		t.Fatalf("custom confirmation not used, got %q", f.notice.Current())
	}
	f.scheduler.Advance(time.Second)

	want := []string{"name:format_invalid", "name:valid", "email:empty", "email:valid"}
	if diff := cmp.Diff(want, validated); diff != "" {
		t.Fatalf("hook calls mismatch (-want +got):\n%s", diff)
	}
	if submits != 1 || resets != 1 {
		t.Fatalf("expected 1 submit and 1 reset, got %d/%d", submits, resets)
	}
}

func TestTimerScheduler_Cancel(t *testing.T) {
	ran := make(chan struct{}, 1)
	task := validator.TimerScheduler{}.Schedule(time.Hour, func() { ran <- struct{}{} })
	if !task.Cancel() {
		t.Fatalf("expected first cancel to stop the timer")
	}
	if task.Cancel() {
		t.Fatalf("second cancel should report false")
	}
	select {
	case <-ran:
		t.Fatalf("cancelled task ran")
	default:
	}
}
