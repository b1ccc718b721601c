// Package tmplerr provides the one error type a template renderer returns.
// Every failure the renderer can hit while producing output comes from an
// upstream library; tmplerr tags it with the category that failed and hands
// it back unchanged in meaning.
//
// # Categories
//
//	+-----------------+---------+-------------------------+----------------------+
//	| Category        | Kind    | Payload                 | Message prefix       |
//	+-----------------+---------+-------------------------+----------------------+
//	| formatting      | fmt     | writer error, ErrFormat | formatting error     |
//	| regex           | regex   | *syntax.Error           | regex error          |
//	| time            | time    | *time.ParseError        | chrono parse error   |
//	| json (optional) | json    | encoding/json errors    | json conversion error|
//	| yaml (optional) | yaml    | gopkg.in/yaml.v3 errors | yaml conversion error|
//	| toml (optional) | toml    | BurntSushi/toml errors  | toml conversion error|
//	+-----------------+---------+-------------------------+----------------------+
//
// The optional categories live in their own packages (jsonerr, yamlerr,
// tomlerr). Importing one defines its category; a binary that does not import
// it cannot construct errors of that kind and does not link the codec.
//
// The set of kinds is open. Code switching on Kind must keep a default arm:
//
//	switch tmplerr.KindOf(err) {
//	case tmplerr.KindRegex:
//		// bad filter pattern
//	case tmplerr.KindTime:
//		// bad date literal
//	default:
//		// anything else, including kinds added later
//	}
//
// # Message Semantics
//
// Error() is "<prefix>: <payload.Error()>", with the payload text inserted
// verbatim. No redaction or truncation happens here.
//
// # Cause vs Unwrap
//
//   - Unwrap() returns the payload, so errors.Is/As find *syntax.Error,
//     *time.ParseError, *json.SyntaxError and friends.
//   - Cause() returns the payload's own cause, one level deeper, or nil.
//
// Chain and Root follow Cause; Walk follows Unwrap.
//
// # Construction
//
//	re, err := tmplerr.CompileRegex(pattern)   // KindRegex on failure
//	t, err := tmplerr.ParseTime(layout, value) // KindTime on failure
//	_, err = tmplerr.Fprintf(w, "%s", v)       // KindFormat on failure
//	e := tmplerr.Regex(err)                    // explicit wrap
//	e, ok := tmplerr.From(err)                 // classify an untagged error
//
// # Concurrency
//
// *Error values are immutable. They may be built on one goroutine and read on
// any other without synchronization. Categories are defined at init; the
// registry is safe for concurrent reads.
//
// # Formatting
//
//   - %v, %s → Error()
//   - %+v    → kind, msg and the cause, recursively
//   - %q     → quoted Error()
//
// *Error also implements slog.LogValuer.
package tmplerr
