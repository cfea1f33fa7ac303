package geom

import (
	"fmt"
	"iter"
)

// NumCorners is the number of corners of a Rect.
const NumCorners = 4

// Corner is one of the four corners of a Rect.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top left"
	case TopRight:
		return "top right"
	case BottomLeft:
		return "bottom left"
	case BottomRight:
		return "bottom right"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// Corner returns the point at corner c of r.
func (r Rect[T]) Corner(c Corner) Point[T] {
	switch c {
	case TopLeft:
		return r.TopLeft()
	case TopRight:
		return r.TopRight()
	case BottomRight:
		return r.BottomRight()
	default:
		return r.BottomLeft()
	}
}

// ClosestCorner returns the corner of r nearest to p. Each axis is
// considered separately, with ties going to the left and bottom edges.
func (r Rect[T]) ClosestCorner(p Point[T]) Corner {
	a := r.Absolute()
	x, y := a.X.ClosestEdge(p.X), a.Y.ClosestEdge(p.Y)
	switch {
	case x == RangeStart && y == RangeStart:
		return BottomLeft
	case x == RangeStart:
		return TopLeft
	case y == RangeStart:
		return BottomRight
	default:
		return TopRight
	}
}

// CornerAtIndex returns the corner of r at index i, where the order is
// bottom left, bottom right, top left, and then top right. If i is not
// in the range [0, NumCorners), ok is false.
func (r Rect[T]) CornerAtIndex(i int) (p Point[T], ok bool) {
	switch i {
	case 0:
		return r.BottomLeft(), true
	case 1:
		return r.BottomRight(), true
	case 2:
		return r.TopLeft(), true
	case 3:
		return r.TopRight(), true
	default:
		return p, false
	}
}

// Corners returns the corners of r as a Quad wound bottom left, top
// left, top right, bottom right.
func (r Rect[T]) Corners() Quad[T] {
	l, rt, b, t := r.LRBT()
	return Quad[T]{Pt(l, b), Pt(l, t), Pt(rt, t), Pt(rt, b)}
}

// Triangles returns the two triangles that cover r.
func (r Rect[T]) Triangles() (Tri[T], Tri[T]) {
	return r.Corners().Triangles()
}

// TrianglesIter returns a cursor over the two triangles that cover r.
func (r Rect[T]) TrianglesIter() Triangles[T] {
	return r.Corners().TrianglesIter()
}

// CornersIter returns a cursor over the corners of r in the same order
// as CornerAtIndex.
func (r Rect[T]) CornersIter() Corners[T] {
	return Corners[T]{rect: r}
}

// Corners yields the corners of a Rect. It can be consumed from either
// end, and copying it copies its position.
type Corners[T Scalar] struct {
	rect Rect[T]
	c    cursor
}

// Next returns the next corner from the front.
func (c *Corners[T]) Next() (Point[T], bool) {
	i, ok := c.c.next(NumCorners)
	if !ok {
		return Point[T]{}, false
	}
	return c.rect.CornerAtIndex(i)
}

// NextBack returns the next corner from the back.
func (c *Corners[T]) NextBack() (Point[T], bool) {
	i, ok := c.c.nextBack(NumCorners)
	if !ok {
		return Point[T]{}, false
	}
	return c.rect.CornerAtIndex(i)
}

// Len returns the number of corners remaining.
func (c Corners[T]) Len() int {
	return c.c.len(NumCorners)
}

// All returns an iterator over the remaining corners, front to back.
// It does not advance c.
func (c Corners[T]) All() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		c := c
		for p, ok := c.Next(); ok; p, ok = c.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Backward is like All but yields the remaining corners back to front.
func (c Corners[T]) Backward() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		c := c
		for p, ok := c.NextBack(); ok; p, ok = c.NextBack() {
			if !yield(p) {
				return
			}
		}
	}
}
