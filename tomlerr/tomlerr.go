// Package tomlerr adds a TOML conversion category to tmplerr, backed by
// github.com/BurntSushi/toml. It is an extension category: consumers that
// never import it are unaffected.
//
// Errors are rendered as "toml conversion error: <message>".
package tomlerr

import (
	"errors"

	"github.com/BurntSushi/toml"

	"github.com/xgx-io/tmplerr"
)

// Kind is the discriminant of TOML conversion failures.
const Kind tmplerr.Kind = "toml"

// Category is the registered TOML category.
var Category = tmplerr.Define(Kind, "toml conversion error", match)

// Syntax failures are toml.ParseError values; encoder and type failures are
// plain errors prefixed "toml: ".
func match(err error) bool {
	var parseErr toml.ParseError
	if errors.As(err, &parseErr) {
		return true
	}
	return tmplerr.HasMessagePrefix(err, "toml: ")
}

// Wrap tags err as a TOML conversion failure.
func Wrap(err error) *tmplerr.Error { return Category.Wrap(err) }

// Is reports whether err is a TOML conversion failure.
func Is(err error) bool { return tmplerr.IsKind(err, Kind) }

// Marshal encodes v as a TOML document. Failures are wrapped with Wrap.
func Marshal(v any) ([]byte, error) {
	data, err := toml.Marshal(v)
	if err != nil {
		return nil, Wrap(err)
	}
	return data, nil
}

// Unmarshal decodes data into v. Failures are wrapped with Wrap.
func Unmarshal(data []byte, v any) error {
	if err := toml.Unmarshal(data, v); err != nil {
		return Wrap(err)
	}
	return nil
}

// Usage returns the multi-line, position-annotated report BurntSushi/toml
// builds for syntax errors. ok is false when err holds no toml.ParseError.
// Error() stays single-line; this is for showing template authors where
// their front matter broke.
func Usage(err error) (string, bool) {
	var parseErr toml.ParseError
	if !errors.As(err, &parseErr) {
		return "", false
	}
	return parseErr.ErrorWithUsage(), true
}
