// Package rings provides the fixed-capacity circular buffer backing the
// windowed transform in package stages.
package rings

import "iter"

// Window is a circular lookahead/lookbehind buffer of capacity 2W+1 for
// half-window W. It keeps a centered "current" element plus up to W elements
// behind it (the left arm) and up to W elements ahead of it (the right arm).
// The occupied slots always form a contiguous circular arc of length
// left+1+right around the read cursor.
//
// A Window is scoped to a single traversal and is not safe for concurrent use.
type Window[T any] struct {
	buf   []T
	half  int // W
	read  int // slot of the centered element
	write int // slot the next Push writes to
	left  int // valid elements behind the center, saturates at W
	right int // valid elements ahead of the center, saturates at W
	empty bool
}

// New creates a Window with half-window size half. It panics if half is
// negative.
func New[T any](half int) *Window[T] {
	if half < 0 {
		panic("rings.New: half-window size must not be negative")
	}
	return &Window[T]{
		buf:   make([]T, 2*half+1),
		half:  half,
		empty: true,
	}
}

// Push appends v ahead of the center. The first pushed element becomes the
// center itself. When the right arm is already full, Push advances the center
// first so the arm never exceeds the half-window size; the evicted slot at
// the far left is overwritten in place.
func (w *Window[T]) Push(v T) {
	if w.empty {
		w.buf[w.read] = v
		w.write = w.next(w.read)
		w.empty = false
		return
	}
	if w.right == w.half {
		if w.half == 0 {
			// degenerate single-slot window: each element replaces the center
			w.buf[w.read] = v
			return
		}
		w.Advance()
	}
	w.buf[w.write] = v
	w.write = w.next(w.write)
	w.right++
}

// Advance moves the center one element forward, shrinking the right arm and
// growing the left arm up to the half-window size. It reports false, without
// moving, when no element is ahead of the center.
func (w *Window[T]) Advance() bool {
	if w.right <= 0 {
		return false
	}
	w.read = w.next(w.read)
	if w.left < w.half {
		w.left++
	}
	w.right--
	return true
}

// Current returns the centered element. It panics if the window is empty.
func (w *Window[T]) Current() T {
	if w.empty {
		panic("rings.Window: Current on empty window")
	}
	return w.buf[w.read]
}

// Len returns the number of buffered elements.
func (w *Window[T]) Len() int {
	if w.empty {
		return 0
	}
	return w.left + 1 + w.right
}

// Left returns the size of the left arm.
func (w *Window[T]) Left() int { return w.left }

// Right returns the size of the right arm.
func (w *Window[T]) Right() int { return w.right }

// Values yields the buffered elements in order, oldest first. The center is
// the element at position Left.
func (w *Window[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if w.empty {
			return
		}
		i := w.read
		for range w.left {
			i = w.prev(i)
		}
		for range w.Len() {
			if !yield(w.buf[i]) {
				return
			}
			i = w.next(i)
		}
	}
}

// Slice returns the buffered elements in order as a fresh slice.
func (w *Window[T]) Slice() []T {
	out := make([]T, 0, w.Len())
	for v := range w.Values() {
		out = append(out, v)
	}
	return out
}

func (w *Window[T]) next(i int) int {
	if i++; i == len(w.buf) {
		return 0
	}
	return i
}

func (w *Window[T]) prev(i int) int {
	if i--; i < 0 {
		return len(w.buf) - 1
	}
	return i
}
