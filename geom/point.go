package geom

import "fmt"

// Point is a two dimensional point. It is also used as a vector for
// sizes and offsets.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns the vector p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns the vector -p.
func (p Point[T]) Neg() Point[T] {
	return Point[T]{X: -p.X, Y: -p.Y}
}

// Mul returns p scaled by s.
func (p Point[T]) Mul(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}

// In reports whether p lies within r. Points on the edges of r are
// considered to be inside of it.
func (p Point[T]) In(r Rect[T]) bool {
	return r.Contains(p)
}
