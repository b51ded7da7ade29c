package stages

import (
	"iter"

	"flume/rings"
)

// fatMapStage is the sliding-window flat-map: each upstream element becomes
// the center of a window of up to half elements on either side, and the
// selector decides what the window contributes to the output.
type fatMapStage[T, R any] struct {
	src  Sequence[T]
	half int
	sel  func(*rings.Window[T]) []R
}

// FatMap returns a stage that, for every upstream element, presents sel with
// a window view centered on that element (holding up to half elements behind
// and ahead of it) and flattens the selector's results into the output.
//
// Windows near the start and end of the sequence are naturally narrower: the
// arms clamp at the true sequence boundaries, they never wrap or pad. FatMap
// panics if half is negative.
func FatMap[T, R any](src Sequence[T], half int, sel func(*rings.Window[T]) []R) Sequence[R] {
	if half < 0 {
		panic("stages.FatMap: half-window size must not be negative")
	}
	return &fatMapStage[T, R]{src: src, half: half, sel: sel}
}

func (s *fatMapStage[T, R]) Seq() iter.Seq[R] {
	return func(yield func(R) bool) {
		w := rings.New[T](s.half)
		// The first half pushes only fill the right arm; the window starts
		// producing once the center's lookahead is complete.
		lag := s.half + 1
		for v := range s.src.Seq() {
			w.Push(v)
			if lag > 0 {
				lag--
			}
			if lag == 0 {
				for _, r := range s.sel(w) {
					if !yield(r) {
						return
					}
				}
			}
		}
		// Upstream ended before the first center was complete.
		if lag > 0 && w.Len() > 0 {
			for _, r := range s.sel(w) {
				if !yield(r) {
					return
				}
			}
		}
		// Drain the trailing under-sized windows.
		for w.Advance() {
			for _, r := range s.sel(w) {
				if !yield(r) {
					return
				}
			}
		}
	}
}
