// unwrap.go — traversal helpers for error graphs that contain *Error values.
//
// Two views of the same graph:
//   - Chain follows the cause chain. At an *Error it steps to Cause(), one
//     level below the payload, because Error() already printed the payload.
//     Everywhere else it steps to errors.Unwrap.
//   - Walk visits the full Unwrap graph (single and multi unwraps), payloads
//     included, the way errors.Is/As see it.
//
// Both are cycle-safe. We must not use map[error] as a blanket seen set:
// non-comparable dynamic types panic as map keys, and so do comparable struct
// types whose interface fields hold non-comparable values. The guard is dual:
//   - errs (map[error]struct{})   for values that hash
//   - ptrs (map[uintptr]struct{}) for pointer identity
//
// Values that do not hash and are not pointers are treated as acyclic and
// bounded by maxDepth.

package tmplerr

import (
	"errors"
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const maxDepth = 1 << 12

type seenSet struct {
	errs map[error]struct{}
	ptrs map[uintptr]struct{}
}

func newSeenSet() *seenSet {
	return &seenSet{
		errs: make(map[error]struct{}, 8),
		ptrs: make(map[uintptr]struct{}, 8),
	}
}

// mark returns true if err was newly marked; false if already seen.
func (s *seenSet) mark(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := err.(*Error); ok || reflect.TypeOf(err).Comparable() {
		if marked, hashed := s.markHashed(err); hashed {
			return marked
		}
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		id := rv.Pointer()
		if _, ok := s.ptrs[id]; ok {
			return false
		}
		s.ptrs[id] = struct{}{}
	}
	return true
}

// markHashed records err in the errs map. hashed is false when the dynamic
// value cannot be a map key. Comparable() is true for a struct with an error
// field, yet hashing panics when that field holds a non-comparable value.
// The lookup panics before the insert, so the map stays untouched.
func (s *seenSet) markHashed(err error) (marked, hashed bool) {
	defer func() {
		if recover() != nil {
			marked, hashed = false, false
		}
	}()
	if _, ok := s.errs[err]; ok {
		return false, true
	}
	s.errs[err] = struct{}{}
	return true, true
}

// next returns the following link of the cause chain.
func next(err error) error {
	if e, ok := err.(*Error); ok {
		return e.Cause()
	}
	return errors.Unwrap(err)
}

// Chain returns the cause chain of err, starting with err itself. At an
// *Error the chain skips the payload and continues at its Cause. Multi
// unwraps (errors.Join) end the chain. nil → nil.
func Chain(err error) []error {
	if err == nil {
		return nil
	}
	seen := newSeenSet()
	out := make([]error, 0, 4)
	for cur := err; cur != nil && len(out) < maxDepth; cur = next(cur) {
		if !seen.mark(cur) {
			break
		}
		out = append(out, cur)
	}
	return out
}

// Root returns the last link of err's cause chain, or nil if err is nil.
func Root(err error) error {
	chain := Chain(err)
	if len(chain) == 0 {
		return nil
	}
	return chain[len(chain)-1]
}

// Walk traverses the Unwrap graph of err depth-first and calls visit for each
// distinct node in pre-order (visit before children). If visit returns false,
// traversal stops. nil err or nil visit is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}

	seen := newSeenSet()
	stack := make([]error, 0, 8)
	stack = append(stack, err)
	seen.mark(err)

	for len(stack) > 0 && len(stack) < maxDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			// reverse push keeps left-to-right order
			for i := len(kids) - 1; i >= 0; i-- {
				if c := kids[i]; c != nil && seen.mark(c) {
					stack = append(stack, c)
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); c != nil && seen.mark(c) {
				stack = append(stack, c)
			}
		}
	}
}
