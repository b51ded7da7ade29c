package query_test

import (
	"testing"

	"flume/query"
)

// benchInput is shared across benchmarks so the comparisons measure the
// pipeline overhead, not slice construction.
var benchInput = func() []int {
	out := make([]int, 100_000)
	for i := range out {
		out[i] = i
	}
	return out
}()

func BenchmarkWhereSelect_Pipeline(b *testing.B) {
	for b.Loop() {
		q := query.Select(
			query.From[int](benchInput).Where(func(n int) bool { return n%2 == 0 }),
			func(n int) int { return n * 2 },
		)
		var sum int
		q.ForEach(func(n int) { sum += n })
		_ = sum
	}
}

func BenchmarkWhereSelect_HandLoop(b *testing.B) {
	for b.Loop() {
		var sum int
		for _, n := range benchInput {
			if n%2 == 0 {
				sum += n * 2
			}
		}
		_ = sum
	}
}

func BenchmarkTakeShortCircuit(b *testing.B) {
	for b.Loop() {
		_ = query.From[int](benchInput).
			Where(func(n int) bool { return n > 10 }).
			Take(5).
			ToSlice()
	}
}

func BenchmarkOrderBy(b *testing.B) {
	for b.Loop() {
		_ = query.OrderByDescending(query.From[int](benchInput), func(n int) int { return n }).
			Take(10).
			ToSlice()
	}
}

func BenchmarkMemoizedReuse(b *testing.B) {
	memo := query.From[int](benchInput).
		Where(func(n int) bool { return n%3 == 0 }).
		Memoize()
	b.ResetTimer()
	for b.Loop() {
		_ = memo.Count()
	}
}
