package stages_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flume/stages"
)

// counting returns an endless 1,2,3,... source that records how many
// elements the downstream actually pulled.
func counting(pulled *int) stages.Sequence[int] {
	return stages.FromSeq(func(yield func(int) bool) {
		for i := 1; ; i++ {
			*pulled++
			if !yield(i) {
				return
			}
		}
	})
}

func TestSkip(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		n     int
		want  []int
	}{
		{"SkipSome", []int{1, 2, 3, 4}, 2, []int{3, 4}},
		{"SkipAll", []int{1, 2}, 5, nil},
		{"SkipZero", []int{1, 2}, 0, []int{1, 2}},
		{"SkipNegative", []int{1, 2}, -1, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stages.Collect(stages.Skip(stages.FromSlice(tt.input), tt.n))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTake(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		n     int
		want  []int
	}{
		{"TakeSome", []int{1, 2, 3, 4}, 2, []int{1, 2}},
		{"TakeMore", []int{1, 2}, 5, []int{1, 2}},
		{"TakeZero", []int{1, 2}, 0, nil},
		{"TakeNegative", []int{1, 2}, -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stages.Collect(stages.Take(stages.FromSlice(tt.input), tt.n))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTakeStopsUpstreamExactly(t *testing.T) {
	pulled := 0
	got := stages.Collect(stages.Take(counting(&pulled), 3))

	require.Equal(t, []int{1, 2, 3}, got)
	require.Equal(t, 3, pulled, "take must stop the upstream mid-push, not discard surplus")
}

func TestTakeZeroNeverTouchesUpstream(t *testing.T) {
	pulled := 0
	require.Nil(t, stages.Collect(stages.Take(counting(&pulled), 0)))
	require.Zero(t, pulled)
}

func TestTakeWhile(t *testing.T) {
	got := stages.Collect(stages.TakeWhile(stages.FromSlice([]int{1, 2, 5, 1}), func(n int) bool {
		return n < 3
	}))
	require.Equal(t, []int{1, 2}, got, "stream ends at the first failing element")
}

func TestTakeWhileStopsUpstream(t *testing.T) {
	pulled := 0
	got := stages.Collect(stages.TakeWhile(counting(&pulled), func(n int) bool { return n < 4 }))
	require.Equal(t, []int{1, 2, 3}, got)
	require.Equal(t, 4, pulled, "the failing element itself is pulled, nothing after it")
}

func TestSkipWhile(t *testing.T) {
	got := stages.Collect(stages.SkipWhile(stages.FromSlice([]int{1, 2, 5, 1}), func(n int) bool {
		return n < 3
	}))
	require.Equal(t, []int{5, 1}, got, "later elements satisfying the predicate are kept")
}

func TestSkipLast(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		n     int
		want  []int
	}{
		{"DropTail", []int{1, 2, 3, 4, 5}, 2, []int{1, 2, 3}},
		{"ShortInput", []int{1}, 2, nil},
		{"ExactLength", []int{1, 2}, 2, nil},
		{"ZeroCount", []int{1, 2}, 0, nil},
		{"NegativeCount", []int{1, 2}, -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stages.Collect(stages.SkipLast(stages.FromSlice(tt.input), tt.n))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTakeLast(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		n     int
		want  []int
	}{
		{"KeepTail", []int{1, 2, 3, 4, 5}, 2, []int{4, 5}},
		{"ShortInput", []int{1}, 2, []int{1}},
		{"ZeroCount", []int{1, 2}, 0, nil},
		{"NegativeCount", []int{1, 2}, -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stages.Collect(stages.TakeLast(stages.FromSlice(tt.input), tt.n))
			require.Equal(t, tt.want, got)
		})
	}
}
