package geom

import "iter"

// NumTriangles is the number of triangles that make up a Quad.
const NumTriangles = 2

// Tri is a triangle.
type Tri[T Scalar] [3]Point[T]

// Centroid returns the average of the vertices of t.
func (t Tri[T]) Centroid() Point[T] {
	return Pt(
		(t[0].X+t[1].X+t[2].X)/T(3),
		(t[0].Y+t[1].Y+t[2].Y)/T(3),
	)
}

// BoundingRect returns the smallest Rect containing t.
func (t Tri[T]) BoundingRect() Rect[T] {
	return boundingRect(t[:])
}

// Quad is a quadrilateral with its vertices in winding order.
type Quad[T Scalar] [4]Point[T]

// Triangles splits q along the diagonal from its first to its third
// vertex.
func (q Quad[T]) Triangles() (Tri[T], Tri[T]) {
	return Tri[T]{q[0], q[1], q[2]}, Tri[T]{q[0], q[2], q[3]}
}

// TrianglesIter returns a cursor over the triangles returned by
// Triangles.
func (q Quad[T]) TrianglesIter() Triangles[T] {
	return Triangles[T]{quad: q}
}

// Centroid returns the average of the vertices of q.
func (q Quad[T]) Centroid() Point[T] {
	return Pt(
		(q[0].X+q[1].X+q[2].X+q[3].X)/T(4),
		(q[0].Y+q[1].Y+q[2].Y+q[3].Y)/T(4),
	)
}

// BoundingRect returns the smallest Rect containing q.
func (q Quad[T]) BoundingRect() Rect[T] {
	return boundingRect(q[:])
}

func boundingRect[T Scalar](points []Point[T]) Rect[T] {
	r := FromCorners(points[0], points[0])
	for _, p := range points[1:] {
		r = r.StretchToPoint(p)
	}
	return r
}

// Triangles yields the triangles of a Quad from either end.
type Triangles[T Scalar] struct {
	quad Quad[T]
	c    cursor
}

func (t *Triangles[T]) at(i int) Tri[T] {
	a, b := t.quad.Triangles()
	if i == 0 {
		return a
	}
	return b
}

// Next returns the next triangle from the front.
func (t *Triangles[T]) Next() (Tri[T], bool) {
	i, ok := t.c.next(NumTriangles)
	if !ok {
		return Tri[T]{}, false
	}
	return t.at(i), true
}

// NextBack returns the next triangle from the back.
func (t *Triangles[T]) NextBack() (Tri[T], bool) {
	i, ok := t.c.nextBack(NumTriangles)
	if !ok {
		return Tri[T]{}, false
	}
	return t.at(i), true
}

// Len returns the number of triangles remaining.
func (t Triangles[T]) Len() int {
	return t.c.len(NumTriangles)
}

// All returns an iterator over the remaining triangles without
// advancing t.
func (t Triangles[T]) All() iter.Seq[Tri[T]] {
	return func(yield func(Tri[T]) bool) {
		t := t
		for tri, ok := t.Next(); ok; tri, ok = t.Next() {
			if !yield(tri) {
				return
			}
		}
	}
}
