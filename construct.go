// construct.go — constructors for the built-in categories and the call-site
// helpers that run an operation and tag its failure.
//
// Constructors are pure wraps: they never fail and never look inside the
// payload. Helpers return a nil error interface on success, never a typed nil.

package tmplerr

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"
)

// ErrFormat is the opaque formatting failure. It carries no detail beyond
// the fact that writing formatted output failed.
var ErrFormat = errors.New("an error occurred when formatting an argument")

// Format tags a formatting failure. A nil err is replaced by ErrFormat,
// since a formatting failure has no payload of its own.
func Format(err error) *Error {
	if err == nil {
		err = ErrFormat
	}
	return formatCategory.Wrap(err)
}

// Regex tags a pattern compilation failure, typically a *syntax.Error.
func Regex(err error) *Error { return regexCategory.Wrap(err) }

// Time tags a timestamp parse failure, typically a *time.ParseError.
func Time(err error) *Error { return timeCategory.Wrap(err) }

// Fprintf writes formatted output to w. A write failure is returned as a
// KindFormat error wrapping the writer's error.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	n, err := fmt.Fprintf(w, format, args...)
	if err != nil {
		return n, Format(err)
	}
	return n, nil
}

// CompileRegex compiles expr. A syntax failure is returned as a KindRegex
// error wrapping the *syntax.Error.
func CompileRegex(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, Regex(err)
	}
	return re, nil
}

// ParseTime parses value with layout. A failure is returned as a KindTime
// error wrapping the *time.ParseError.
func ParseTime(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, Time(err)
	}
	return t, nil
}

// ParseTimeIn is ParseTime with an explicit default location.
func ParseTimeIn(layout, value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, Time(err)
	}
	return t, nil
}
