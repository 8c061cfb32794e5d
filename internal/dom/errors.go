package dom

import "errors"

// ErrNotFound is returned when an element lookup by id fails.
var ErrNotFound = errors.New("element not found")
