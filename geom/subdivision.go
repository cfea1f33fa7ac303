package geom

import "iter"

// NumSubdivisions is the number of quadrants produced by splitting a
// Rect in half along both axes.
const NumSubdivisions = 4

// SubdivisionRanges holds the halves of each axis of a Rect.
type SubdivisionRanges[T Scalar] struct {
	XA, XB Range[T]
	YA, YB Range[T]
}

// SubdivisionRanges splits each axis of r at its middle. XA and YA are
// the left and bottom halves.
func (r Rect[T]) SubdivisionRanges() SubdivisionRanges[T] {
	a := r.Absolute()
	x, y := a.CenterXY()
	return SubdivisionRanges[T]{
		XA: Rng(a.X.Start, x),
		XB: Rng(x, a.X.End),
		YA: Rng(a.Y.Start, y),
		YB: Rng(y, a.Y.End),
	}
}

// Subdivisions splits r in half along both axes. The quadrants are
// ordered bottom left, bottom right, top left, and then top right.
func (r Rect[T]) Subdivisions() [NumSubdivisions]Rect[T] {
	return r.SubdivisionRanges().Rects()
}

// SubdivisionsIter returns a cursor over the same quadrants as
// Subdivisions.
func (r Rect[T]) SubdivisionsIter() Subdivisions[T] {
	return r.SubdivisionRanges().RectsIter()
}

// Rects returns the four quadrants described by s in subdivision
// order.
func (s SubdivisionRanges[T]) Rects() [NumSubdivisions]Rect[T] {
	var rects [NumSubdivisions]Rect[T]
	for i := range rects {
		rects[i], _ = s.SubdivisionAtIndex(i)
	}
	return rects
}

// RectsIter returns a cursor over the quadrants described by s.
func (s SubdivisionRanges[T]) RectsIter() Subdivisions[T] {
	return Subdivisions[T]{ranges: s}
}

// SubdivisionAtIndex returns the quadrant at index i. If i is not in
// the range [0, NumSubdivisions), ok is false.
func (s SubdivisionRanges[T]) SubdivisionAtIndex(i int) (r Rect[T], ok bool) {
	switch i {
	case 0:
		return Rect[T]{X: s.XA, Y: s.YA}, true
	case 1:
		return Rect[T]{X: s.XB, Y: s.YA}, true
	case 2:
		return Rect[T]{X: s.XA, Y: s.YB}, true
	case 3:
		return Rect[T]{X: s.XB, Y: s.YB}, true
	default:
		return r, false
	}
}

// Subdivisions yields the quadrants of a Rect. It can be consumed from
// either end, and copying it copies its position.
type Subdivisions[T Scalar] struct {
	ranges SubdivisionRanges[T]
	c      cursor
}

// Next returns the next quadrant from the front.
func (s *Subdivisions[T]) Next() (Rect[T], bool) {
	i, ok := s.c.next(NumSubdivisions)
	if !ok {
		return Rect[T]{}, false
	}
	return s.ranges.SubdivisionAtIndex(i)
}

// NextBack returns the next quadrant from the back.
func (s *Subdivisions[T]) NextBack() (Rect[T], bool) {
	i, ok := s.c.nextBack(NumSubdivisions)
	if !ok {
		return Rect[T]{}, false
	}
	return s.ranges.SubdivisionAtIndex(i)
}

// Len returns the number of quadrants remaining.
func (s Subdivisions[T]) Len() int {
	return s.c.len(NumSubdivisions)
}

// All returns an iterator over the remaining quadrants without
// advancing s.
func (s Subdivisions[T]) All() iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		s := s
		for r, ok := s.Next(); ok; r, ok = s.Next() {
			if !yield(r) {
				return
			}
		}
	}
}

// Backward returns an iterator over the remaining quadrants in reverse
// without advancing s.
func (s Subdivisions[T]) Backward() iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		s := s
		for r, ok := s.NextBack(); ok; r, ok = s.NextBack() {
			if !yield(r) {
				return
			}
		}
	}
}
