// predicates.go — stdlib-aligned kind queries.
//
// Everything here goes through errors.As, so an *Error wrapped by
// fmt.Errorf("%w") or errors.Join is still found.

package tmplerr

// KindOf returns the kind of the first *Error along err's chain, or "" if none.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind()
	}
	return ""
}

// IsKind reports whether err's chain holds an *Error of the given kind.
// Only the first *Error is consulted; re-tagging an *Error is not expected.
func IsKind(err error, kind Kind) bool {
	return kind != "" && KindOf(err) == kind
}

// IsFormat reports whether err is a formatting failure.
func IsFormat(err error) bool { return IsKind(err, KindFormat) }

// IsRegex reports whether err is a pattern compilation failure.
func IsRegex(err error) bool { return IsKind(err, KindRegex) }

// IsTime reports whether err is a timestamp parse failure.
func IsTime(err error) bool { return IsKind(err, KindTime) }
