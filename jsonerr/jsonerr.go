// Package jsonerr adds the JSON conversion category to tmplerr.
//
// Importing this package defines the "json" kind. Errors are rendered as
// "json conversion error: <message>".
package jsonerr

import (
	"encoding/json"
	"errors"

	"github.com/xgx-io/tmplerr"
)

// Kind is the discriminant of JSON conversion failures.
const Kind tmplerr.Kind = "json"

// Category is the registered JSON category.
var Category = tmplerr.Define(Kind, "json conversion error", match)

func match(err error) bool {
	var (
		syntaxErr      *json.SyntaxError
		typeErr        *json.UnmarshalTypeError
		invalidErr     *json.InvalidUnmarshalError
		unsupportedTyp *json.UnsupportedTypeError
		unsupportedVal *json.UnsupportedValueError
		marshalerErr   *json.MarshalerError
	)
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.As(err, &invalidErr) ||
		errors.As(err, &unsupportedTyp) ||
		errors.As(err, &unsupportedVal) ||
		errors.As(err, &marshalerErr)
}

// Wrap tags err as a JSON conversion failure.
func Wrap(err error) *tmplerr.Error { return Category.Wrap(err) }

// Is reports whether err is a JSON conversion failure.
func Is(err error) bool { return tmplerr.IsKind(err, Kind) }

// Marshal encodes v. Failures are wrapped with Wrap.
func Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, Wrap(err)
	}
	return data, nil
}

// Unmarshal decodes data into v. Failures are wrapped with Wrap.
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return Wrap(err)
	}
	return nil
}
