package geom

// Each of the methods in this file moves r along a single axis unless
// it is documented as placing r relative to a corner or an edge
// midpoint, in which case it is the combination of one x and one y
// alignment. The size of r never changes.
//
// The edge alignments follow the stored orientation of the ranges
// involved. Aligning the left of r to the left of other lines up the
// starts of their x ranges when both run the same way and the start of
// one with the end of the other when they do not. For a reversed other,
// the "left" edge used is therefore its geometric right.

// LeftOf places r so that its right edge is at the left edge of other.
func (r Rect[T]) LeftOf(other Rect[T]) Rect[T] {
	r.X = r.X.AlignBefore(other.X)
	return r
}

// RightOf places r so that its left edge is at the right edge of
// other.
func (r Rect[T]) RightOf(other Rect[T]) Rect[T] {
	r.X = r.X.AlignAfter(other.X)
	return r
}

// Below places r so that its top edge is at the bottom edge of other.
func (r Rect[T]) Below(other Rect[T]) Rect[T] {
	r.Y = r.Y.AlignBefore(other.Y)
	return r
}

// Above places r so that its bottom edge is at the top edge of other.
func (r Rect[T]) Above(other Rect[T]) Rect[T] {
	r.Y = r.Y.AlignAfter(other.Y)
	return r
}

// AlignXOf aligns r with other along the x axis as specified by a.
func (r Rect[T]) AlignXOf(a Alignment, other Rect[T]) Rect[T] {
	r.X = r.X.AlignTo(a, other.X)
	return r
}

// AlignYOf aligns r with other along the y axis as specified by a.
func (r Rect[T]) AlignYOf(a Alignment, other Rect[T]) Rect[T] {
	r.Y = r.Y.AlignTo(a, other.Y)
	return r
}

// AlignLeftOf lines up the left edge of r with the left edge of other.
func (r Rect[T]) AlignLeftOf(other Rect[T]) Rect[T] {
	r.X = r.X.AlignStartOf(other.X)
	return r
}

// AlignMiddleXOf centers r on other along the x axis.
func (r Rect[T]) AlignMiddleXOf(other Rect[T]) Rect[T] {
	r.X = r.X.AlignMiddleOf(other.X)
	return r
}

// AlignRightOf lines up the right edge of r with the right edge of
// other.
func (r Rect[T]) AlignRightOf(other Rect[T]) Rect[T] {
	r.X = r.X.AlignEndOf(other.X)
	return r
}

// AlignBottomOf lines up the bottom edge of r with the bottom edge of
// other.
func (r Rect[T]) AlignBottomOf(other Rect[T]) Rect[T] {
	r.Y = r.Y.AlignStartOf(other.Y)
	return r
}

// AlignMiddleYOf centers r on other along the y axis.
func (r Rect[T]) AlignMiddleYOf(other Rect[T]) Rect[T] {
	r.Y = r.Y.AlignMiddleOf(other.Y)
	return r
}

// AlignTopOf lines up the top edge of r with the top edge of other.
func (r Rect[T]) AlignTopOf(other Rect[T]) Rect[T] {
	r.Y = r.Y.AlignEndOf(other.Y)
	return r
}

// TopLeftOf places r in the top left corner of other.
func (r Rect[T]) TopLeftOf(other Rect[T]) Rect[T] {
	return r.AlignLeftOf(other).AlignTopOf(other)
}

// TopRightOf places r in the top right corner of other.
func (r Rect[T]) TopRightOf(other Rect[T]) Rect[T] {
	return r.AlignRightOf(other).AlignTopOf(other)
}

// BottomLeftOf places r in the bottom left corner of other.
func (r Rect[T]) BottomLeftOf(other Rect[T]) Rect[T] {
	return r.AlignLeftOf(other).AlignBottomOf(other)
}

// BottomRightOf places r in the bottom right corner of other.
func (r Rect[T]) BottomRightOf(other Rect[T]) Rect[T] {
	return r.AlignRightOf(other).AlignBottomOf(other)
}

// MidTopOf places r at the middle of the top edge of other.
func (r Rect[T]) MidTopOf(other Rect[T]) Rect[T] {
	return r.AlignMiddleXOf(other).AlignTopOf(other)
}

// MidBottomOf places r at the middle of the bottom edge of other.
func (r Rect[T]) MidBottomOf(other Rect[T]) Rect[T] {
	return r.AlignMiddleXOf(other).AlignBottomOf(other)
}

// MidLeftOf places r at the middle of the left edge of other.
func (r Rect[T]) MidLeftOf(other Rect[T]) Rect[T] {
	return r.AlignLeftOf(other).AlignMiddleYOf(other)
}

// MidRightOf places r at the middle of the right edge of other.
func (r Rect[T]) MidRightOf(other Rect[T]) Rect[T] {
	return r.AlignRightOf(other).AlignMiddleYOf(other)
}

// MiddleOf centers r on other.
func (r Rect[T]) MiddleOf(other Rect[T]) Rect[T] {
	return r.AlignMiddleXOf(other).AlignMiddleYOf(other)
}
