// wrap.go — classification of arbitrary errors into categories.
//
// Constructors need the caller to know which category failed. From is for
// the other case: an error surfaced from a helper that did not tag it.

package tmplerr

import (
	"errors"
	"strings"
)

// From classifies err into a defined category.
//   - nil → (nil, false)
//   - an *Error anywhere in err's chain → that *Error, unchanged
//   - otherwise the first category, in definition order, whose matcher
//     accepts err wraps it
//   - no match → (nil, false); err is left to the caller
func From(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	if e, ok := AsError(err); ok {
		return e, true
	}
	for _, c := range Categories() {
		if c.Matches(err) {
			return c.Wrap(err), true
		}
	}
	return nil, false
}

// AsError returns the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// HasMessagePrefix reports whether err, or any error it wraps, renders with
// the given prefix. Matchers use it for upstream libraries that only signal
// failures by message text.
func HasMessagePrefix(err error, prefix string) bool {
	found := false
	Walk(err, func(e error) bool {
		found = strings.HasPrefix(e.Error(), prefix)
		return !found
	})
	return found
}
