package query

import (
	"cmp"

	"flume/stages"
)

// OrderedQuery is a Query plus the compound sort key accumulated so far.
// ThenBy and ThenByDescending extend the key list and rebuild one sort stage
// over the original pre-sort upstream, so a whole OrderBy/ThenBy chain costs
// a single materialize-and-sort pass; re-sorting the already-sorted output
// would lose the earlier keys' tie-breaks.
type OrderedQuery[T any] struct {
	Query[T]
	pre  stages.Sequence[T] // upstream as it was before the sort
	keys []stages.SortKey[T]
}

// OrderBy sorts the query ascending by key. Each key selector runs once per
// element per traversal; elements with equal keys keep their original
// relative order.
func OrderBy[T any, K cmp.Ordered](q Query[T], key func(T) K) OrderedQuery[T] {
	return orderedBy(q.src, []stages.SortKey[T]{stages.KeyAsc(key)})
}

// OrderByDescending sorts the query descending by key.
func OrderByDescending[T any, K cmp.Ordered](q Query[T], key func(T) K) OrderedQuery[T] {
	return orderedBy(q.src, []stages.SortKey[T]{stages.KeyDesc(key)})
}

// ThenBy appends an ascending tie-break key to an existing ordering.
func ThenBy[T any, K cmp.Ordered](q OrderedQuery[T], key func(T) K) OrderedQuery[T] {
	return orderedBy(q.pre, appendKey(q.keys, stages.KeyAsc(key)))
}

// ThenByDescending appends a descending tie-break key to an existing
// ordering.
func ThenByDescending[T any, K cmp.Ordered](q OrderedQuery[T], key func(T) K) OrderedQuery[T] {
	return orderedBy(q.pre, appendKey(q.keys, stages.KeyDesc(key)))
}

func orderedBy[T any](pre stages.Sequence[T], keys []stages.SortKey[T]) OrderedQuery[T] {
	return OrderedQuery[T]{
		Query: Query[T]{src: stages.SortedBy(pre, keys...)},
		pre:   pre,
		keys:  keys,
	}
}

// appendKey copies before appending so sibling orderings branched off the
// same OrderedQuery never share key storage.
func appendKey[T any](keys []stages.SortKey[T], key stages.SortKey[T]) []stages.SortKey[T] {
	out := make([]stages.SortKey[T], 0, len(keys)+1)
	out = append(out, keys...)
	return append(out, key)
}
