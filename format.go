// format.go — fmt.Formatter for *Error.
//
// Behavior:
//
//   %s, %v   → Error()
//   %q       → quoted Error()
//   %+v      → kind=<kind> msg="<Error()>"
//              cause: <Cause() formatted with %+v>
//
// The cause line is omitted when Cause() is nil. The payload is not printed
// separately; its message is already part of Error().

package tmplerr

import (
	"fmt"
	"io"
)

var _ fmt.Formatter = (*Error)(nil)

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func formatVerbose(w io.Writer, e *Error) {
	if e == nil {
		_, _ = io.WriteString(w, "<nil>")
		return
	}
	_, _ = fmt.Fprintf(w, "kind=%s msg=%q", e.Kind(), e.Error())
	if cause := e.Cause(); cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		// nested *Error values render verbosely too
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}
}
