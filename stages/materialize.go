package stages

import (
	"iter"
	"math/rand/v2"
)

// thruStage is the generic materialize-and-retransform stage: it gathers the
// whole upstream into a slice, hands it to a transform, and re-derives a
// sequence from the result. Reverse, Shuffle, Sample and Random are all built
// on it.
type thruStage[T, R any] struct {
	src Sequence[T]
	op  func([]T) []R
}

// Thru returns a stage that materializes src and yields the elements of
// op(materialized). The transform runs once per traversal and receives a
// fresh slice it may mutate freely.
func Thru[T, R any](src Sequence[T], op func([]T) []R) Sequence[R] {
	return &thruStage[T, R]{src: src, op: op}
}

func (s *thruStage[T, R]) Seq() iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, v := range s.op(Collect(s.src)) {
			if !yield(v) {
				return
			}
		}
	}
}

// Reverse returns a stage yielding the elements of src in reverse order.
func Reverse[T any](src Sequence[T]) Sequence[T] {
	return Thru(src, func(values []T) []T {
		for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
			values[i], values[j] = values[j], values[i]
		}
		return values
	})
}

// Shuffle returns a stage yielding the elements of src in uniformly random
// order, reshuffled on every traversal. A nil rng uses the shared global
// generator; pass a seeded *rand.Rand for deterministic output.
func Shuffle[T any](src Sequence[T], rng *rand.Rand) Sequence[T] {
	return Thru(src, func(values []T) []T {
		shuffleInPlace(values, len(values), rng)
		return values
	})
}

// Sample returns a stage yielding n elements of src chosen uniformly without
// replacement, clamped to the available length. A nil rng uses the shared
// global generator.
func Sample[T any](src Sequence[T], n int, rng *rand.Rand) Sequence[T] {
	return Thru(src, func(values []T) []T {
		if n <= 0 {
			return nil
		}
		if n > len(values) {
			n = len(values)
		}
		shuffleInPlace(values, n, rng)
		return values[:n]
	})
}

// Random returns a stage yielding n independent uniform draws from src.
// Draws are with replacement, so elements may repeat; n is not clamped.
// A nil rng uses the shared global generator. An empty upstream yields
// nothing regardless of n.
func Random[T any](src Sequence[T], n int, rng *rand.Rand) Sequence[T] {
	return Thru(src, func(values []T) []T {
		if n <= 0 || len(values) == 0 {
			return nil
		}
		out := make([]T, n)
		for i := range out {
			out[i] = values[intN(rng, len(values))]
		}
		return out
	})
}

// shuffleInPlace runs a Fisher-Yates pass over the first n slots of values.
// Limiting n gives the partial pass used by Sample.
func shuffleInPlace[T any](values []T, n int, rng *rand.Rand) {
	for i := 0; i < n && i < len(values)-1; i++ {
		j := i + intN(rng, len(values)-i)
		values[i], values[j] = values[j], values[i]
	}
}

func intN(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}

// memoStage captures one traversal's results and serves them identically to
// all subsequent traversals. It is the one stage whose state deliberately
// outlives a traversal.
type memoStage[T any] struct {
	src      Sequence[T]
	captured []T
	done     bool
}

// Memoize returns a stage that fully consumes src on first demand and
// replays the captured elements on every traversal, never touching src
// again. Useful in front of expensive upstream work, or to pin down a
// one-shot source.
func Memoize[T any](src Sequence[T]) Sequence[T] {
	return &memoStage[T]{src: src}
}

func (s *memoStage[T]) ensure() {
	if !s.done {
		s.captured = Collect(s.src)
		s.done = true
	}
}

func (s *memoStage[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.ensure()
		for _, v := range s.captured {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *memoStage[T]) Len() int {
	s.ensure()
	return len(s.captured)
}

func (s *memoStage[T]) Materialize() []T {
	s.ensure()
	out := make([]T, len(s.captured))
	copy(out, s.captured)
	return out
}
