package query

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"flume/stages"
)

// Query is the fluent handle over one pipeline of stages. It is immutable
// from the outside: every operator returns a new Query wrapping a new stage,
// and upstream stages are shared structurally, never mutated, so a Query can
// be branched into several independent pipelines.
type Query[T any] struct {
	src stages.Sequence[T]
}

// From builds a Query from one or more queryable sources. Each source may be
// a []T, an iter.Seq[T], a stages.Sequence[T], or another Query[T]; multiple
// sources are concatenated in the order supplied. From panics on any other
// source type. With no sources the query is empty.
func From[T any](sources ...any) Query[T] {
	srcs := make([]stages.Sequence[T], 0, len(sources))
	for _, source := range sources {
		switch s := source.(type) {
		case []T:
			srcs = append(srcs, stages.FromSlice(s))
		case iter.Seq[T]:
			srcs = append(srcs, stages.FromSeq(s))
		case stages.Sequence[T]:
			srcs = append(srcs, s)
		case Query[T]:
			srcs = append(srcs, s.src)
		default:
			panic(fmt.Sprintf("query.From: unsupported source type %T", source))
		}
	}
	if len(srcs) == 1 {
		return Query[T]{src: srcs[0]}
	}
	return Query[T]{src: stages.Concat(srcs...)}
}

// Of builds a Query over the given values.
func Of[T any](values ...T) Query[T] {
	return Query[T]{src: stages.FromSlice(values)}
}

// Wrap builds a Query over an existing stage.
func Wrap[T any](src stages.Sequence[T]) Query[T] {
	return Query[T]{src: src}
}

// Seq returns the query's push-style iterator for direct range consumption.
func (q Query[T]) Seq() iter.Seq[T] { return q.src.Seq() }

// Sequence returns the underlying stage, for composing with package stages
// directly.
func (q Query[T]) Sequence() stages.Sequence[T] { return q.src }

// Where keeps only the elements satisfying pred.
func (q Query[T]) Where(pred func(T) bool) Query[T] {
	return Query[T]{src: stages.Filter(q.src, pred)}
}

// Concat appends the given queries after this one, in order.
func (q Query[T]) Concat(others ...Query[T]) Query[T] {
	srcs := make([]stages.Sequence[T], 0, len(others)+1)
	srcs = append(srcs, q.src)
	for _, o := range others {
		srcs = append(srcs, o.src)
	}
	return Query[T]{src: stages.Concat(srcs...)}
}

// Skip drops the first n elements.
func (q Query[T]) Skip(n int) Query[T] {
	return Query[T]{src: stages.Skip(q.src, n)}
}

// Take keeps at most the first n elements, stopping the upstream as soon as
// they have been produced.
func (q Query[T]) Take(n int) Query[T] {
	return Query[T]{src: stages.Take(q.src, n)}
}

// SkipWhile drops elements while pred holds, then keeps the rest.
func (q Query[T]) SkipWhile(pred func(T) bool) Query[T] {
	return Query[T]{src: stages.SkipWhile(q.src, pred)}
}

// TakeWhile keeps elements while pred holds, ending at the first failure.
func (q Query[T]) TakeWhile(pred func(T) bool) Query[T] {
	return Query[T]{src: stages.TakeWhile(q.src, pred)}
}

// SkipLast drops the trailing n elements. Non-positive n yields an empty
// query.
func (q Query[T]) SkipLast(n int) Query[T] {
	return Query[T]{src: stages.SkipLast(q.src, n)}
}

// TakeLast keeps the trailing n elements; the upstream is consumed in full.
// Non-positive n yields an empty query.
func (q Query[T]) TakeLast(n int) Query[T] {
	return Query[T]{src: stages.TakeLast(q.src, n)}
}

// Reverse yields the elements in reverse order; the upstream is materialized.
func (q Query[T]) Reverse() Query[T] {
	return Query[T]{src: stages.Reverse(q.src)}
}

// Shuffle yields the elements in random order using the global generator.
func (q Query[T]) Shuffle() Query[T] {
	return Query[T]{src: stages.Shuffle(q.src, nil)}
}

// ShuffleWith is Shuffle with an explicit random source, for deterministic
// pipelines.
func (q Query[T]) ShuffleWith(rng *rand.Rand) Query[T] {
	return Query[T]{src: stages.Shuffle(q.src, rng)}
}

// Sample yields n elements drawn uniformly without replacement, clamped to
// the number available.
func (q Query[T]) Sample(n int) Query[T] {
	return Query[T]{src: stages.Sample(q.src, n, nil)}
}

// SampleWith is Sample with an explicit random source.
func (q Query[T]) SampleWith(n int, rng *rand.Rand) Query[T] {
	return Query[T]{src: stages.Sample(q.src, n, rng)}
}

// Random yields n independent uniform draws, with replacement.
func (q Query[T]) Random(n int) Query[T] {
	return Query[T]{src: stages.Random(q.src, n, nil)}
}

// RandomWith is Random with an explicit random source.
func (q Query[T]) RandomWith(n int, rng *rand.Rand) Query[T] {
	return Query[T]{src: stages.Random(q.src, n, rng)}
}

// Intersperse yields sep between every pair of consecutive elements.
func (q Query[T]) Intersperse(sep T) Query[T] {
	return Query[T]{src: stages.Intersperse(q.src, sep)}
}

// Tap invokes action on every element as it flows past, without changing the
// stream.
func (q Query[T]) Tap(action func(T)) Query[T] {
	return Query[T]{src: stages.Peek(q.src, action)}
}

// Thru materializes the query, passes the slice to op, and continues the
// pipeline over op's result.
func (q Query[T]) Thru(op func([]T) []T) Query[T] {
	return Query[T]{src: stages.Thru(q.src, op)}
}

// Memoize captures the query's elements on first iteration and replays the
// captured traversal thereafter, insulating downstream consumers from
// one-shot sources and repeated upstream cost.
func (q Query[T]) Memoize() Query[T] {
	return Query[T]{src: stages.Memoize(q.src)}
}

// ToSlice materializes the query into a slice.
func (q Query[T]) ToSlice() []T { return stages.Collect(q.src) }

// Count returns the number of elements.
func (q Query[T]) Count() int { return stages.Count(q.src) }

// First returns the first element, or false when the query is empty.
func (q Query[T]) First() (T, bool) { return stages.First(q.src) }

// Last returns the final element, or false when the query is empty.
func (q Query[T]) Last() (T, bool) { return stages.Last(q.src) }

// Single returns the one element satisfying pred. It returns
// stages.ErrNoMatch when nothing matches and stages.ErrMultipleMatches when
// the match is not unique.
func (q Query[T]) Single(pred func(T) bool) (T, error) {
	return stages.Single(q.src, pred)
}

// Any reports whether any element satisfies pred.
func (q Query[T]) Any(pred func(T) bool) bool { return stages.Any(q.src, pred) }

// All reports whether every element satisfies pred.
func (q Query[T]) All(pred func(T) bool) bool { return stages.All(q.src, pred) }

// ForEach calls action for every element.
func (q Query[T]) ForEach(action func(T)) { stages.Each(q.src, action) }
