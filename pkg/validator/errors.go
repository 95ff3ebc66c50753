package validator

import "errors"

var (
	// ErrEmptyField matches failures raised for empty or whitespace-only input.
	ErrEmptyField = errors.New("validator: field must not be empty")
	// ErrInvalidName matches failures raised by the name format rule.
	ErrInvalidName = errors.New("validator: name type is not valid")
	// ErrInvalidEmail matches failures raised by the email format rule.
	ErrInvalidEmail = errors.New("validator: email type is not valid")

	// ErrUnknownField is returned when an operation targets a field that is
	// not bound to the validator.
	ErrUnknownField = errors.New("validator: unknown field")
	// ErrMissingPresenter is returned by New when a collaborator is nil.
	ErrMissingPresenter = errors.New("validator: presenter is required")
	// ErrSubmitDisabled is returned by OnSubmit while the submit control is
	// disabled; a disabled control does not accept interaction.
	ErrSubmitDisabled = errors.New("validator: submit control is disabled")
)

// Kind classifies a validation failure.
type Kind string

const (
	KindEmptyField         Kind = "empty_field"
	KindInvalidNameFormat  Kind = "invalid_name_format"
	KindInvalidEmailFormat Kind = "invalid_email_format"
)

// Failure describes a user-input validation failure. Failures are state, not
// faults: FormValidator renders them and never returns them from OnFieldInput.
type Failure struct {
	Kind    Kind
	Field   FieldID
	Message string
}

func (f *Failure) Error() string {
	if f == nil {
		return ""
	}
	return f.Message
}

// Is lets errors.Is match a Failure against the package sentinels.
func (f *Failure) Is(target error) bool {
	if f == nil {
		return false
	}
	switch target {
	case ErrEmptyField:
		return f.Kind == KindEmptyField
	case ErrInvalidName:
		return f.Kind == KindInvalidNameFormat
	case ErrInvalidEmail:
		return f.Kind == KindInvalidEmailFormat
	}
	return false
}

// phase maps the failure onto the field phase it produces.
func (f *Failure) phase() Phase {
	if f.Kind == KindEmptyField {
		return PhaseEmpty
	}
	return PhaseFormatInvalid
}
