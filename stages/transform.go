package stages

import "iter"

// filterStage yields only the upstream elements satisfying a predicate.
type filterStage[T any] struct {
	src  Sequence[T]
	pred func(T) bool
}

// Filter returns a stage yielding the elements of src for which pred holds,
// in upstream order.
func Filter[T any](src Sequence[T], pred func(T) bool) Sequence[T] {
	return &filterStage[T]{src: src, pred: pred}
}

func (s *filterStage[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.src.Seq() {
			if s.pred(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// mapStage applies a selector to every upstream element, 1:1.
type mapStage[T, R any] struct {
	src Sequence[T]
	fn  func(T) R
}

// Map returns a stage applying fn to each element of src, preserving order
// and count exactly.
func Map[T, R any](src Sequence[T], fn func(T) R) Sequence[R] {
	return &mapStage[T, R]{src: src, fn: fn}
}

func (s *mapStage[T, R]) Seq() iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range s.src.Seq() {
			if !yield(s.fn(v)) {
				return
			}
		}
	}
}

// flatMapStage expands each upstream element into zero or more outputs.
type flatMapStage[T, R any] struct {
	src Sequence[T]
	fn  func(T) []R
}

// FlatMap returns a stage yielding, for each element of src, the elements of
// fn(element) in order before advancing upstream. Results are flattened by
// exactly one level.
func FlatMap[T, R any](src Sequence[T], fn func(T) []R) Sequence[R] {
	return &flatMapStage[T, R]{src: src, fn: fn}
}

func (s *flatMapStage[T, R]) Seq() iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range s.src.Seq() {
			for _, r := range s.fn(v) {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// concatStage visits its upstreams in order, exhausting each before starting
// the next.
type concatStage[T any] struct {
	srcs []Sequence[T]
}

// Concat returns a stage appending the given sequences in the order supplied.
func Concat[T any](srcs ...Sequence[T]) Sequence[T] {
	return &concatStage[T]{srcs: srcs}
}

func (s *concatStage[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, src := range s.srcs {
			for v := range src.Seq() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// distinctStage drops elements whose key has been seen earlier in the
// traversal. The seen-set is rebuilt per traversal.
type distinctStage[T any, K comparable] struct {
	src Sequence[T]
	key func(T) K
}

// DistinctBy returns a stage yielding the first upstream element observed per
// unique key, preserving first-occurrence order.
func DistinctBy[T any, K comparable](src Sequence[T], key func(T) K) Sequence[T] {
	return &distinctStage[T, K]{src: src, key: key}
}

// Distinct is DistinctBy with the element itself as the key.
func Distinct[T comparable](src Sequence[T]) Sequence[T] {
	return DistinctBy(src, func(v T) T { return v })
}

func (s *distinctStage[T, K]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range s.src.Seq() {
			k := s.key(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// withoutStage filters src against an exclusion set built from one or more
// blacklist sequences.
type withoutStage[T comparable] struct {
	src     Sequence[T]
	exclude []Sequence[T]
}

// Without returns a stage yielding the elements of src that are not members
// of any of the exclude sequences. The exclusion set is built once, up front,
// at the start of each traversal.
func Without[T comparable](src Sequence[T], exclude ...Sequence[T]) Sequence[T] {
	return &withoutStage[T]{src: src, exclude: exclude}
}

func (s *withoutStage[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		banned := make(map[T]struct{})
		for _, ex := range s.exclude {
			for v := range ex.Seq() {
				banned[v] = struct{}{}
			}
		}
		for v := range s.src.Seq() {
			if _, skip := banned[v]; skip {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// zipStage walks two sequences in lockstep.
type zipStage[A, B, R any] struct {
	a  Sequence[A]
	b  Sequence[B]
	fn func(A, B) R
}

// Zip returns a stage combining the elements of a and b positionally via fn,
// stopping as soon as either sequence is exhausted.
func Zip[A, B, R any](a Sequence[A], b Sequence[B], fn func(A, B) R) Sequence[R] {
	return &zipStage[A, B, R]{a: a, b: b, fn: fn}
}

func (s *zipStage[A, B, R]) Seq() iter.Seq[R] {
	return func(yield func(R) bool) {
		next, stop := Pull(s.b)
		defer stop()
		for va := range s.a.Seq() {
			vb, ok := next()
			if !ok {
				return
			}
			if !yield(s.fn(va, vb)) {
				return
			}
		}
	}
}

// intersperseStage yields a separator between consecutive upstream elements.
type intersperseStage[T any] struct {
	src Sequence[T]
	sep T
}

// Intersperse returns a stage yielding sep between each pair of consecutive
// elements of src. Empty and single-element sequences pass through unchanged.
func Intersperse[T any](src Sequence[T], sep T) Sequence[T] {
	return &intersperseStage[T]{src: src, sep: sep}
}

func (s *intersperseStage[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for v := range s.src.Seq() {
			if !first {
				if !yield(s.sep) {
					return
				}
			}
			first = false
			if !yield(v) {
				return
			}
		}
	}
}

// peekStage performs a side effect per element without modifying the stream.
type peekStage[T any] struct {
	src    Sequence[T]
	action func(T)
}

// Peek returns a stage invoking action on each element of src as it passes
// through. Useful for debugging or counters.
func Peek[T any](src Sequence[T], action func(T)) Sequence[T] {
	return &peekStage[T]{src: src, action: action}
}

func (s *peekStage[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.src.Seq() {
			s.action(v)
			if !yield(v) {
				return
			}
		}
	}
}
