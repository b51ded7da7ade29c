package stages

import "iter"

// Sequence is the contract every pipeline stage satisfies: on request,
// produce a forward traversal of its elements.
//
// Seq returns Go's native push-style iterator: the producer calls yield once
// per element and stops as soon as yield returns false, so early termination
// propagates upstream through every wrapping stage. Pull-style traversal is
// derived with Pull where lockstep consumption is needed.
//
// Seq may be called more than once; each call rebuilds the stage's
// per-traversal state from scratch. Whether two calls see the same elements
// depends on the ultimate source: slice sources are restartable, a one-shot
// generative iter.Seq is not.
type Sequence[T any] interface {
	Seq() iter.Seq[T]
}

// Optional fast paths, probed by type assertion. A stage that can report its
// element count implements sizer; a stage that can hand over its elements
// without driving the iterator implements materializer.
type (
	sizer interface {
		Len() int
	}
	materializer[T any] interface {
		Materialize() []T
	}
)

// sliceSource adapts an in-memory slice. It is restartable and exposes both
// fast paths.
type sliceSource[T any] struct {
	values []T
}

// FromSlice returns a Sequence backed by values. The slice is not copied;
// the caller must not mutate it while the sequence is in use.
func FromSlice[T any](values []T) Sequence[T] {
	return &sliceSource[T]{values: values}
}

func (s *sliceSource[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *sliceSource[T]) Len() int { return len(s.values) }

func (s *sliceSource[T]) Materialize() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

// seqSource adapts an existing iterator.
type seqSource[T any] struct {
	seq iter.Seq[T]
}

// FromSeq returns a Sequence backed by seq. Restartability follows seq.
func FromSeq[T any](seq iter.Seq[T]) Sequence[T] {
	return &seqSource[T]{seq: seq}
}

func (s *seqSource[T]) Seq() iter.Seq[T] { return s.seq }

// Pull returns a pull-style cursor over s. The stop function must be called
// when the caller is done with the cursor.
func Pull[T any](s Sequence[T]) (next func() (T, bool), stop func()) {
	return iter.Pull(s.Seq())
}

// Collect gathers all elements of s into a slice. It uses the stage's
// Materialize fast path when present, pre-sizes from Len when known, and
// otherwise drives a full traversal.
func Collect[T any](s Sequence[T]) []T {
	if m, ok := s.(materializer[T]); ok {
		return m.Materialize()
	}
	var out []T
	if sz, ok := s.(sizer); ok {
		out = make([]T, 0, sz.Len())
	}
	for v := range s.Seq() {
		out = append(out, v)
	}
	return out
}
