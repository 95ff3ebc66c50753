package document

import "errors"

// ErrInvalidSelector is returned for selectors that do not compile as CSS.
var ErrInvalidSelector = errors.New("document: invalid selector")
