// kinds.go — built-in kinds and the category registry.
//
// Intent:
//   - Ship the three categories every renderer needs (fmt, regex, time).
//   - Let optional packages define further categories at init without
//     touching this file.
//
// Conventions (documented, not enforced here):
//   - Kinds are short lowercase ASCII names of the upstream library.
//   - Prefixes read as "<thing> error" and never end with ": ".

package tmplerr

import (
	"errors"
	"fmt"
	"regexp/syntax"
	"sync"
	"time"
)

// Built-in kinds, always present.
const (
	KindFormat Kind = "fmt"
	KindRegex  Kind = "regex"
	KindTime   Kind = "time"
)

// Category is a registered failure category. The only way to obtain one is
// Define, so an *Error can never carry a category that does not exist in the
// binary.
type Category struct {
	kind   Kind
	prefix string
	match  func(error) bool
}

// Kind returns the discriminant reported by errors of this category.
func (c *Category) Kind() Kind { return c.kind }

// Prefix returns the message tag, e.g. "regex error".
func (c *Category) Prefix() string { return c.prefix }

// Wrap tags err with this category. It never fails and never inspects err.
func (c *Category) Wrap(err error) *Error {
	return &Error{cat: c, err: err}
}

// Matches reports whether From would classify err into this category.
// Categories defined without a matcher match nothing.
func (c *Category) Matches(err error) bool {
	if err == nil || c.match == nil {
		return false
	}
	return c.match(err)
}

type registry struct {
	mu     sync.RWMutex
	order  []*Category
	byKind map[Kind]*Category
}

// Built-in categories. Prefixes are part of the public message contract.
var (
	formatCategory = &Category{kind: KindFormat, prefix: "formatting error", match: func(err error) bool {
		return errors.Is(err, ErrFormat)
	}}
	regexCategory = &Category{kind: KindRegex, prefix: "regex error", match: func(err error) bool {
		var se *syntax.Error
		return errors.As(err, &se)
	}}
	timeCategory = &Category{kind: KindTime, prefix: "chrono parse error", match: func(err error) bool {
		var pe *time.ParseError
		return errors.As(err, &pe)
	}}
)

// builtinKinds is the ordered set of kinds the core ships with.
var builtinKinds = []Kind{KindFormat, KindRegex, KindTime}

// categories is seeded with the built-ins so they always precede anything
// passed to Define, whatever the package initialization order.
var categories = newRegistry(formatCategory, regexCategory, timeCategory)

func newRegistry(seed ...*Category) *registry {
	r := &registry{byKind: make(map[Kind]*Category, len(seed))}
	for _, c := range seed {
		r.byKind[c.kind] = c
		r.order = append(r.order, c)
	}
	return r
}

// Define registers a new category and returns its handle. match may be nil;
// it is only consulted by From.
//
// Define is meant to be called from package-level var declarations or init.
// It panics if kind or prefix is empty, or if kind is already defined.
func Define(kind Kind, prefix string, match func(error) bool) *Category {
	if kind == "" {
		panic("tmplerr: Define with empty kind")
	}
	if prefix == "" {
		panic(fmt.Sprintf("tmplerr: Define(%q) with empty prefix", kind))
	}

	categories.mu.Lock()
	defer categories.mu.Unlock()

	if _, dup := categories.byKind[kind]; dup {
		panic(fmt.Sprintf("tmplerr: Define called twice for kind %q", kind))
	}
	c := &Category{kind: kind, prefix: prefix, match: match}
	categories.byKind[kind] = c
	categories.order = append(categories.order, c)
	return c
}

// Lookup returns the category defined for kind.
func Lookup(kind Kind) (*Category, bool) {
	categories.mu.RLock()
	defer categories.mu.RUnlock()
	c, ok := categories.byKind[kind]
	return c, ok
}

// Categories returns every defined category in definition order. Built-ins
// come first.
func Categories() []*Category {
	categories.mu.RLock()
	defer categories.mu.RUnlock()
	out := make([]*Category, len(categories.order))
	copy(out, categories.order)
	return out
}

// Kinds returns the kinds of every defined category in definition order.
func Kinds() []Kind {
	cats := Categories()
	out := make([]Kind, len(cats))
	for i, c := range cats {
		out[i] = c.kind
	}
	return out
}

// BuiltinKinds returns a defensive copy of the built-in kinds in a stable order.
func BuiltinKinds() []Kind {
	out := make([]Kind, len(builtinKinds))
	copy(out, builtinKinds)
	return out
}

// IsBuiltin reports whether k is one of the built-in core kinds.
func (k Kind) IsBuiltin() bool {
	switch k {
	case KindFormat, KindRegex, KindTime:
		return true
	default:
		return false
	}
}
