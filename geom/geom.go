// Package geom provides axis-aligned rectangles built from a pair of
// one-dimensional ranges, along with the operations needed to place,
// pad, and subdivide them.
//
// Unlike image.Rectangle, the y axis points up: a Rect's bottom is its
// lowest y value and its top is its highest. The ranges that make up a
// Rect may be stored in either direction. Every derived query, such as
// Left or TopRight, works on the absolute form of those ranges.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float is a constraint for the operations that only make sense for
// floating point scalars.
type Float interface {
	constraints.Float
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func two[T Scalar]() T { return T(2) }
