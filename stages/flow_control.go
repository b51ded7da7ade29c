package stages

import "iter"

// skipStage drops the first n upstream elements.
type skipStage[T any] struct {
	src Sequence[T]
	n   int
}

// Skip returns a stage dropping the first n elements of src. A non-positive
// n yields src unchanged.
func Skip[T any](src Sequence[T], n int) Sequence[T] {
	return &skipStage[T]{src: src, n: n}
}

func (s *skipStage[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range s.src.Seq() {
			if skipped < s.n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// takeStage yields at most n upstream elements, stopping its upstream
// mid-push instead of discarding surplus elements after the fact.
type takeStage[T any] struct {
	src Sequence[T]
	n   int
}

// Take returns a stage yielding the first n elements of src. A non-positive
// n yields nothing and never touches src.
func Take[T any](src Sequence[T], n int) Sequence[T] {
	return &takeStage[T]{src: src, n: n}
}

func (s *takeStage[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.n <= 0 {
			return
		}
		count := 0
		for v := range s.src.Seq() {
			if !yield(v) {
				return
			}
			count++
			if count >= s.n {
				return
			}
		}
	}
}

// skipWhileStage drops elements until the predicate first fails.
type skipWhileStage[T any] struct {
	src  Sequence[T]
	pred func(T) bool
}

// SkipWhile returns a stage dropping elements of src as long as pred holds,
// then yielding the rest, including any later elements that satisfy pred.
func SkipWhile[T any](src Sequence[T], pred func(T) bool) Sequence[T] {
	return &skipWhileStage[T]{src: src, pred: pred}
}

func (s *skipWhileStage[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		dropping := true
		for v := range s.src.Seq() {
			if dropping {
				if s.pred(v) {
					continue
				}
				dropping = false
			}
			if !yield(v) {
				return
			}
		}
	}
}

// takeWhileStage yields elements until the predicate first fails.
type takeWhileStage[T any] struct {
	src  Sequence[T]
	pred func(T) bool
}

// TakeWhile returns a stage yielding elements of src as long as pred holds,
// terminating the stream at the first element that fails it.
func TakeWhile[T any](src Sequence[T], pred func(T) bool) Sequence[T] {
	return &takeWhileStage[T]{src: src, pred: pred}
}

func (s *takeWhileStage[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.src.Seq() {
			if !s.pred(v) {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// skipLastStage withholds the trailing n elements by delaying every yield
// behind an n-slot ring: element i is released only when element i+n arrives,
// so the last n never leave the buffer.
type skipLastStage[T any] struct {
	src Sequence[T]
	n   int
}

// SkipLast returns a stage yielding all but the last n elements of src.
// A non-positive n produces an empty sequence.
func SkipLast[T any](src Sequence[T], n int) Sequence[T] {
	return &skipLastStage[T]{src: src, n: n}
}

func (s *skipLastStage[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.n <= 0 {
			return
		}
		delay := make([]T, s.n)
		head := 0
		filled := 0
		for v := range s.src.Seq() {
			if filled < s.n {
				delay[(head+filled)%s.n] = v
				filled++
				continue
			}
			out := delay[head]
			delay[head] = v
			head = (head + 1) % s.n
			if !yield(out) {
				return
			}
		}
	}
}

// takeLastStage keeps the trailing n elements. The tail boundary cannot be
// known without consuming the entire upstream, so this stage materializes.
type takeLastStage[T any] struct {
	src Sequence[T]
	n   int
}

// TakeLast returns a stage yielding the last n elements of src, in order.
// A non-positive n produces an empty sequence.
func TakeLast[T any](src Sequence[T], n int) Sequence[T] {
	return &takeLastStage[T]{src: src, n: n}
}

func (s *takeLastStage[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.n <= 0 {
			return
		}
		all := Collect(s.src)
		if len(all) > s.n {
			all = all[len(all)-s.n:]
		}
		for _, v := range all {
			if !yield(v) {
				return
			}
		}
	}
}
