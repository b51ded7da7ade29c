package stages

import "errors"

// Sentinel results for Single.
var (
	ErrNoMatch         = errors.New("no matching element")
	ErrMultipleMatches = errors.New("more than one matching element")
)

func First[T any](s Sequence[T]) (T, bool) {
	for v := range s.Seq() {
		return v, true
	}
	var zero T
	return zero, false
}

func Last[T any](s Sequence[T]) (T, bool) {
	var last T
	found := false
	for v := range s.Seq() {
		last = v
		found = true
	}
	return last, found
}

// Single returns the one element of s satisfying pred. It fails with
// ErrNoMatch when nothing matches and with ErrMultipleMatches as soon as a
// second match is seen; it never silently returns an arbitrary match.
func Single[T any](s Sequence[T], pred func(T) bool) (T, error) {
	var match T
	found := false
	for v := range s.Seq() {
		if !pred(v) {
			continue
		}
		if found {
			var zero T
			return zero, ErrMultipleMatches
		}
		match = v
		found = true
	}
	if !found {
		var zero T
		return zero, ErrNoMatch
	}
	return match, nil
}

func Any[T any](s Sequence[T], pred func(T) bool) bool {
	for v := range s.Seq() {
		if pred(v) {
			return true
		}
	}
	return false
}

func All[T any](s Sequence[T], pred func(T) bool) bool {
	for v := range s.Seq() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Count returns the number of elements in s, using the Len fast path when
// the stage knows its size without iterating.
func Count[T any](s Sequence[T]) int {
	if sz, ok := s.(sizer); ok {
		return sz.Len()
	}
	count := 0
	for range s.Seq() {
		count++
	}
	return count
}

// Reduce folds the elements of s with reducer, starting from initial.
func Reduce[T, R any](s Sequence[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range s.Seq() {
		acc = reducer(acc, v)
	}
	return acc
}

// Each calls action for every element of s.
func Each[T any](s Sequence[T], action func(T)) {
	for v := range s.Seq() {
		action(v)
	}
}
