package query

import (
	"flume/rings"
	"flume/stages"
)

// Type-changing and constrained operators live at package level: a Go method
// cannot introduce new type parameters, so anything producing a different
// element type, or requiring comparable or numeric elements, is a function
// taking the Query as its first argument.

// Select projects every element through sel, 1:1.
func Select[T, R any](q Query[T], sel func(T) R) Query[R] {
	return Query[R]{src: stages.Map(q.src, sel)}
}

// SelectMany projects every element to zero or more outputs and flattens the
// results by one level, in order.
func SelectMany[T, R any](q Query[T], sel func(T) []R) Query[R] {
	return Query[R]{src: stages.FlatMap(q.src, sel)}
}

// FatMap is a sliding-window SelectMany: sel sees each element as the center
// of a window holding up to half elements on either side (narrower at the
// sequence boundaries) and contributes zero or more outputs per window.
// FatMap panics if half is negative.
func FatMap[T, R any](q Query[T], half int, sel func(*rings.Window[T]) []R) Query[R] {
	return Query[R]{src: stages.FatMap(q.src, half, sel)}
}

// Zip walks two queries in lockstep and combines elements positionally via
// sel, stopping at the shorter query.
func Zip[A, B, R any](a Query[A], b Query[B], sel func(A, B) R) Query[R] {
	return Query[R]{src: stages.Zip(a.src, b.src, sel)}
}

// Distinct keeps the first occurrence of each value and drops later
// duplicates, preserving first-occurrence order.
func Distinct[T comparable](q Query[T]) Query[T] {
	return Query[T]{src: stages.Distinct(q.src)}
}

// DistinctBy keeps the first element observed per unique key.
func DistinctBy[T any, K comparable](q Query[T], key func(T) K) Query[T] {
	return Query[T]{src: stages.DistinctBy(q.src, key)}
}

// Without drops every element that is a member of any exclude query. The
// exclusion set is built once, up front, per traversal.
func Without[T comparable](q Query[T], exclude ...Query[T]) Query[T] {
	srcs := make([]stages.Sequence[T], len(exclude))
	for i, e := range exclude {
		srcs[i] = e.src
	}
	return Query[T]{src: stages.Without(q.src, srcs...)}
}

// Aggregate folds the query with reducer, starting from initial.
func Aggregate[T, R any](q Query[T], initial R, reducer func(R, T) R) R {
	return stages.Reduce(q.src, initial, reducer)
}

// Sum adds up the elements of a numeric query.
func Sum[T stages.Number](q Query[T]) T { return stages.Sum(q.src) }

// Average returns the arithmetic mean of a numeric query, or NaN when the
// query is empty.
func Average[T stages.Number](q Query[T]) float64 { return stages.Average(q.src) }

// Min returns the smallest element, or false when the query is empty.
func Min[T stages.Number](q Query[T]) (T, bool) { return stages.Min(q.src) }

// Max returns the largest element, or false when the query is empty.
func Max[T stages.Number](q Query[T]) (T, bool) { return stages.Max(q.src) }
