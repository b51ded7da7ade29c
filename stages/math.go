package stages

import "math"

type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

func Sum[T Number](s Sequence[T]) T {
	var total T
	for v := range s.Seq() {
		total += v
	}
	return total
}

// Average returns the arithmetic mean of s. On an empty sequence it returns
// NaN rather than an error: the zero-length division propagates as a float
// sentinel the caller can test with math.IsNaN.
func Average[T Number](s Sequence[T]) float64 {
	var total float64
	count := 0
	for v := range s.Seq() {
		total += float64(v)
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return total / float64(count)
}

func Min[T Number](s Sequence[T]) (T, bool) {
	var min T
	first := true
	for v := range s.Seq() {
		if first {
			min = v
			first = false
			continue
		}
		if v < min {
			min = v
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return min, true
}

func Max[T Number](s Sequence[T]) (T, bool) {
	var max T
	first := true
	for v := range s.Seq() {
		if first {
			max = v
			first = false
			continue
		}
		if v > max {
			max = v
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return max, true
}
