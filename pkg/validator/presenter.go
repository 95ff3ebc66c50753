package validator

// FieldPresenter renders the visual state of one field.
type FieldPresenter interface {
	// ShowError replaces any visible error with message and applies the
	// error styling.
	ShowError(message string)
	// ClearError removes the visible error, if any, and applies the success
	// styling.
	ClearError()
	// Reset clears the field's displayed text and returns its inline styling
	// to the default state.
	Reset()
}

// SubmitControl is the control that sends the form.
type SubmitControl interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// Notice displays the transient confirmation message shown after submit.
type Notice interface {
	// Show displays message, replacing a notice that is already visible.
	Show(message string)
	Hide()
}

// Hooks observe validator activity. Hooks run while the validator holds its
// lock and must not call back into it.
type Hooks struct {
	OnValidate func(field FieldID, phase Phase)
	OnSubmit   func()
	OnReset    func()
}
