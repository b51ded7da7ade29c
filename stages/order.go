package stages

import (
	"cmp"
	"iter"
	"slices"
)

// SortKey is one component of a compound sort: it knows how to compute its
// key for every element of a materialized traversal and compare two elements
// by their cached keys. Build instances with KeyAsc and KeyDesc.
type SortKey[T any] interface {
	// comparer computes the key once per element of items and returns a
	// comparator over element indices. The key cache lives in the returned
	// closure, so it is scoped to a single traversal.
	comparer(items []T) func(i, j int) int
}

type ascKey[T any, K cmp.Ordered] struct {
	sel func(T) K
}

// KeyAsc returns a SortKey ordering elements by sel ascending.
func KeyAsc[T any, K cmp.Ordered](sel func(T) K) SortKey[T] {
	return ascKey[T, K]{sel: sel}
}

func (k ascKey[T, K]) comparer(items []T) func(i, j int) int {
	keys := make([]K, len(items))
	for i, v := range items {
		keys[i] = k.sel(v)
	}
	return func(i, j int) int { return cmp.Compare(keys[i], keys[j]) }
}

type descKey[T any, K cmp.Ordered] struct {
	sel func(T) K
}

// KeyDesc returns a SortKey ordering elements by sel descending.
func KeyDesc[T any, K cmp.Ordered](sel func(T) K) SortKey[T] {
	return descKey[T, K]{sel: sel}
}

func (k descKey[T, K]) comparer(items []T) func(i, j int) int {
	keys := make([]K, len(items))
	for i, v := range items {
		keys[i] = k.sel(v)
	}
	return func(i, j int) int { return cmp.Compare(keys[j], keys[i]) }
}

// sortStage materializes its upstream and yields it ordered by a compound
// key. One materialize-and-sort pass handles all keys; chaining a further key
// appends to the same stage (see query.ThenBy) rather than re-sorting.
type sortStage[T any] struct {
	src  Sequence[T]
	keys []SortKey[T]
}

// SortedBy returns a stage yielding the elements of src sorted
// lexicographically over the given key tuple. Each key selector runs once per
// element per traversal; ties across all keys keep their original upstream
// order regardless of the underlying sort algorithm. Re-iterating re-sorts.
func SortedBy[T any](src Sequence[T], keys ...SortKey[T]) Sequence[T] {
	return &sortStage[T]{src: src, keys: keys}
}

func (s *sortStage[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		items := Collect(s.src)
		cmps := make([]func(i, j int) int, len(s.keys))
		for i, k := range s.keys {
			cmps[i] = k.comparer(items)
		}
		order := make([]int, len(items))
		for i := range order {
			order[i] = i
		}
		slices.SortFunc(order, func(a, b int) int {
			for _, c := range cmps {
				if d := c(a, b); d != 0 {
					return d
				}
			}
			// all keys tie: fall back to original input index
			return cmp.Compare(a, b)
		})
		for _, i := range order {
			if !yield(items[i]) {
				return
			}
		}
	}
}
