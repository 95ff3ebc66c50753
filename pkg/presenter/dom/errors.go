package dom

import (
	"errors"
	"fmt"
)

// ErrElementMissing is returned by Bind when the document lacks one of the
// required elements.
var ErrElementMissing = errors.New("dom: required element missing")

func missing(what string) error {
	return fmt.Errorf("%w: %s", ErrElementMissing, what)
}
