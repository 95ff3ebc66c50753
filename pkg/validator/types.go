package validator

import "time"

// FieldID identifies one of the two fields bound to a FormValidator.
type FieldID string

const (
	FieldName  FieldID = "name"
	FieldEmail FieldID = "email"
)

// Fields lists the bound fields in document order.
var Fields = []FieldID{FieldName, FieldEmail}

// DefaultResetDelay is how long the confirmation notice stays visible before
// the form is cleared.
const DefaultResetDelay = 3 * time.Second

// Phase is the visual state of a field.
type Phase int

const (
	// PhaseUntouched is the initial state and the state after a submit reset.
	PhaseUntouched Phase = iota
	// PhaseEmpty means the last input was empty or whitespace only.
	PhaseEmpty
	// PhaseFormatInvalid means the last input failed the field's format rule.
	PhaseFormatInvalid
	// PhaseValid means the last input passed the field's format rule.
	PhaseValid
)

func (p Phase) String() string {
	switch p {
	case PhaseUntouched:
		return "untouched"
	case PhaseEmpty:
		return "empty"
	case PhaseFormatInvalid:
		return "format_invalid"
	case PhaseValid:
		return "valid"
	default:
		return "unknown"
	}
}

// FieldState is the in-memory record of a field's current validity and
// normalized value. Value keeps the last accepted input (trimmed and
// lowercased); Valid reports whether the latest input was accepted.
type FieldState struct {
	ID       FieldID `json:"id"`
	RawValue string  `json:"raw_value"`
	Value    string  `json:"value"`
	Valid    bool    `json:"valid"`
	Phase    Phase   `json:"phase"`
}

// Messages holds the user facing texts. Empty may reference the field name
// with the {name} placeholder.
type Messages struct {
	Empty        string `json:"empty" yaml:"empty" koanf:"empty"`
	InvalidName  string `json:"invalid_name" yaml:"invalid_name" koanf:"invalid_name"`
	InvalidEmail string `json:"invalid_email" yaml:"invalid_email" koanf:"invalid_email"`
	Confirmation string `json:"confirmation" yaml:"confirmation" koanf:"confirmation"`
}

// DefaultMessages returns the built-in message set.
func DefaultMessages() Messages {
	return Messages{
		Empty:        "field {name} must not be empty",
		InvalidName:  "name type is not valid",
		InvalidEmail: "email type is not valid",
		Confirmation: "form validated",
	}
}

// merge fills blank entries in m with the defaults.
func (m Messages) merge(defaults Messages) Messages {
	if m.Empty == "" {
		m.Empty = defaults.Empty
	}
	if m.InvalidName == "" {
		m.InvalidName = defaults.InvalidName
	}
	if m.InvalidEmail == "" {
		m.InvalidEmail = defaults.InvalidEmail
	}
	if m.Confirmation == "" {
		m.Confirmation = defaults.Confirmation
	}
	return m
}
