// error.go — the aggregate *Error type and its accessors.
//
// Design tenets:
//   - One payload per error: the category decides the message tag, the payload
//     carries every detail.
//   - Immutable values: nothing mutates an *Error after construction, so a
//     value may be stored in caches or sent over channels freely.
//   - Open categories: Kind is not an exhaustive enum; switch statements
//     over Kind need a default arm.

package tmplerr

import (
	"errors"
)

// Kind discriminates the failure category of an *Error.
//
// Kinds are stringly-typed so optional packages can add their own without a
// central enum. The built-in kinds live in kinds.go.
type Kind string

// String returns the kind as a plain string.
func (k Kind) String() string { return string(k) }

// Error is the aggregate error produced by rendering. It holds exactly one
// payload together with the category that wrapped it.
//
// Rendered text is "<category prefix>: <payload message>". Unwrap returns the
// payload so errors.Is/As reach the upstream error; Cause returns the
// payload's own cause, one level deeper.
type Error struct {
	cat *Category
	err error
}

// compile-time guarantee that *Error is an error
var _ error = (*Error)(nil)

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cat == nil {
		// zero Error{} built outside a Category
		return payloadText(e.err)
	}
	return e.cat.prefix + ": " + payloadText(e.err)
}

// Kind returns the category discriminant. A nil receiver reports "".
func (e *Error) Kind() Kind {
	if e == nil || e.cat == nil {
		return ""
	}
	return e.cat.kind
}

// Category returns the category handle that constructed e.
func (e *Error) Category() *Category {
	if e == nil {
		return nil
	}
	return e.cat
}

// Payload returns the wrapped upstream error.
func (e *Error) Payload() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Unwrap exposes the payload to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Payload() }

// Cause returns the payload's own cause, not the payload. It is nil when
// the payload does not wrap anything.
//
// The skip is deliberate: Error() already prints the payload message, so a
// chain printer following Cause does not repeat it.
func (e *Error) Cause() error {
	if e == nil || e.err == nil {
		return nil
	}
	return errors.Unwrap(e.err)
}

func payloadText(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
