package query_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flume/query"
)

type pair struct {
	a, b int
}

func TestOrderBy(t *testing.T) {
	q := query.Of(3, 1, 2)

	require.Equal(t, []int{1, 2, 3}, query.OrderBy(q, func(n int) int { return n }).ToSlice())
	require.Equal(t, []int{3, 2, 1}, query.OrderByDescending(q, func(n int) int { return n }).ToSlice())
}

func TestOrderByThenByCompound(t *testing.T) {
	input := []pair{{a: 1, b: 2}, {a: 1, b: 1}, {a: 2, b: 0}}

	byA := query.OrderBy(query.From[pair](input), func(p pair) int { return p.a })
	got := query.ThenByDescending(byA, func(p pair) int { return p.b }).ToSlice()

	require.Equal(t, []pair{{a: 1, b: 2}, {a: 1, b: 1}, {a: 2, b: 0}}, got)
}

func TestThenByRefinesNotResorts(t *testing.T) {
	// a then-by key must break ties within the primary key, not reorder it
	input := []pair{{2, 1}, {1, 9}, {2, 0}, {1, 0}}

	byA := query.OrderBy(query.From[pair](input), func(p pair) int { return p.a })
	got := query.ThenBy(byA, func(p pair) int { return p.b }).ToSlice()

	require.Equal(t, []pair{{1, 0}, {1, 9}, {2, 0}, {2, 1}}, got)
}

func TestThenByBranching(t *testing.T) {
	input := []pair{{1, 2}, {1, 1}, {0, 5}}
	byA := query.OrderBy(query.From[pair](input), func(p pair) int { return p.a })

	asc := query.ThenBy(byA, func(p pair) int { return p.b })
	desc := query.ThenByDescending(byA, func(p pair) int { return p.b })

	require.Equal(t, []pair{{0, 5}, {1, 1}, {1, 2}}, asc.ToSlice())
	require.Equal(t, []pair{{0, 5}, {1, 2}, {1, 1}}, desc.ToSlice())
	require.Equal(t, []pair{{0, 5}, {1, 2}, {1, 1}}, byA.ToSlice(),
		"branching a then-by must not extend the original ordering")
}

func TestOrderByStability(t *testing.T) {
	// records with equal keys keep their original relative order
	input := []pair{{1, 0}, {0, 1}, {1, 2}, {0, 3}, {1, 4}}
	got := query.OrderBy(query.From[pair](input), func(p pair) int { return p.a }).ToSlice()
	require.Equal(t, []pair{{0, 1}, {0, 3}, {1, 0}, {1, 2}, {1, 4}}, got)
}

func TestOrderedQueryChainsOn(t *testing.T) {
	sorted := query.OrderBy(query.Of(4, 1, 3, 2), func(n int) int { return n })
	got := sorted.Take(2).ToSlice()
	require.Equal(t, []int{1, 2}, got)
}
