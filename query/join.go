package query

import "flume/stages"

// Join produces one output per (left, right) pair for which on holds. The
// right query is re-traversed once per left element (nested loops, O(N*M));
// callers joining large inputs should Memoize or pre-index the right side.
func Join[L, R, O any](left Query[L], right Query[R], on func(L, R) bool, sel func(L, R) O) Query[O] {
	return Query[O]{src: stages.FlatMap(left.src, func(l L) []O {
		var out []O
		for r := range right.src.Seq() {
			if on(l, r) {
				out = append(out, sel(l, r))
			}
		}
		return out
	})}
}

// GroupJoin produces one output per left element, pairing it with the lazy
// sub-query of all matching right elements. The sub-query is not
// materialized: it is a filtered view over the right source, evaluated only
// if sel (or a later consumer) iterates it.
func GroupJoin[L, R, O any](left Query[L], right Query[R], on func(L, R) bool, sel func(L, Query[R]) O) Query[O] {
	return Query[O]{src: stages.Map(left.src, func(l L) O {
		matches := Query[R]{src: stages.Filter(right.src, func(r R) bool {
			return on(l, r)
		})}
		return sel(l, matches)
	})}
}
