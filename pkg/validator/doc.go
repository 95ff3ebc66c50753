// Package validator implements the name/email form validation widget. The
// FormValidator owns the per-field state, applies the format rules on every
// input event and gates the submit control. Rendering is delegated to the
// FieldPresenter, SubmitControl and Notice interfaces so the rules can run
// against a parsed document, a terminal session or a test double alike.
//
// The deferred "reset after submit" step is modelled as a cancellable Task
// obtained from a Scheduler. Submitting again before the delay elapses
// cancels and replaces the pending reset.
package validator
