// Package yamlerr adds the YAML conversion category to tmplerr, backed by
// gopkg.in/yaml.v3.
//
// Importing this package defines the "yaml" kind. Errors are rendered as
// "yaml conversion error: <message>".
package yamlerr

import (
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/xgx-io/tmplerr"
)

// Kind is the discriminant of YAML conversion failures.
const Kind tmplerr.Kind = "yaml"

// Category is the registered YAML category.
var Category = tmplerr.Define(Kind, "yaml conversion error", match)

// yaml.v3 reports syntax problems as plain errors prefixed "yaml: "; only
// type mismatches have a concrete type.
func match(err error) bool {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return true
	}
	return tmplerr.HasMessagePrefix(err, "yaml: ")
}

// Wrap tags err as a YAML conversion failure.
func Wrap(err error) *tmplerr.Error { return Category.Wrap(err) }

// Is reports whether err is a YAML conversion failure.
func Is(err error) bool { return tmplerr.IsKind(err, Kind) }

// Marshal encodes v. Failures are wrapped with Wrap.
func Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, Wrap(err)
	}
	return data, nil
}

// Unmarshal decodes data into v. Failures are wrapped with Wrap.
func Unmarshal(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return Wrap(err)
	}
	return nil
}
