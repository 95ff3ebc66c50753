package validator

import (
	"regexp"
	"strings"
)

var (
	// namePattern only anchors the start: any leading run of two or more
	// letters passes, whatever follows it ("An9" is accepted).
	namePattern = regexp.MustCompile(`^[a-zA-Z]{2,}\s?`)

	// emailPattern keeps the separator class [.-_+] as written, which is the
	// range '.'..'_' plus '+'.
	emailPattern = regexp.MustCompile(`^\w+([.-_+]?\w+)*@\w+([.-]?\w+)*(\.\w{2,10})+$`)
)

// Rule is a field format rule.
type Rule struct {
	Field   FieldID
	Kind    Kind
	Pattern *regexp.Regexp
}

// Match reports whether raw satisfies the rule. The text is tested as typed,
// without trimming, matching how the rule was always applied.
func (r Rule) Match(raw string) bool {
	if r.Pattern == nil {
		return true
	}
	return r.Pattern.MatchString(raw)
}

// NameRule returns the format rule for the name field.
func NameRule() Rule {
	return Rule{Field: FieldName, Kind: KindInvalidNameFormat, Pattern: namePattern}
}

// EmailRule returns the format rule for the email field.
func EmailRule() Rule {
	return Rule{Field: FieldEmail, Kind: KindInvalidEmailFormat, Pattern: emailPattern}
}

// ValidName reports whether raw passes the name rule.
func ValidName(raw string) bool {
	return namePattern.MatchString(raw)
}

// ValidEmail reports whether raw passes the email rule.
func ValidEmail(raw string) bool {
	return emailPattern.MatchString(raw)
}

// Normalize returns the stored form of an accepted value.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsBlank reports whether raw is empty once surrounding whitespace is removed.
func IsBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}
