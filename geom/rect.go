package geom

import "fmt"

// Rect is an axis-aligned rectangle described by its extent along the
// x and y axes.
type Rect[T Scalar] struct {
	X, Y Range[T]
}

// Padding is the amount to trim from each edge of a Rect. X.Start and
// X.End trim the start and end of the Rect's x range and Y.Start and
// Y.End trim its y range. For a Rect with forward ranges those are the
// left, right, bottom, and top edges. A reversed range is trimmed in
// its stored orientation, so X.Start then trims the right edge. The
// zero value is no padding.
type Padding[T Scalar] struct {
	X, Y Range[T]
}

// NoPadding returns a Padding that does not change a Rect.
func NoPadding[T Scalar]() Padding[T] {
	return Padding[T]{}
}

// FromPointSize returns a Rect of size wh centered on xy.
func FromPointSize[T Scalar](xy, wh Point[T]) Rect[T] {
	return Rect[T]{
		X: RangeFromPosLen(xy.X, wh.X),
		Y: RangeFromPosLen(xy.Y, wh.Y),
	}
}

// FromXYWH returns a Rect of width w and height h centered on (x, y).
func FromXYWH[T Scalar](x, y, w, h T) Rect[T] {
	return FromPointSize(Pt(x, y), Pt(w, h))
}

// FromSize returns a Rect of size wh centered on the origin.
func FromSize[T Scalar](wh Point[T]) Rect[T] {
	return FromPointSize(Point[T]{}, wh)
}

// FromWH returns a Rect of width w and height h centered on the origin.
func FromWH[T Scalar](w, h T) Rect[T] {
	return FromSize(Pt(w, h))
}

// FromCorners returns the Rect with opposite corners at a and b. The
// order of the points does not matter.
func FromCorners[T Scalar](a, b Point[T]) Rect[T] {
	return Rect[T]{
		X: Range[T]{Start: min(a.X, b.X), End: max(a.X, b.X)},
		Y: Range[T]{Start: min(a.Y, b.Y), End: max(a.Y, b.Y)},
	}
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("%v-%v", r.BottomLeft(), r.TopRight())
}

// Absolute returns r with both of its ranges in absolute form.
func (r Rect[T]) Absolute() Rect[T] {
	return Rect[T]{X: r.X.Absolute(), Y: r.Y.Absolute()}
}

// Overlap returns the area covered by both r and other. Rects that
// only touch overlap with zero area. If either axis does not overlap,
// ok is false.
func (r Rect[T]) Overlap(other Rect[T]) (overlap Rect[T], ok bool) {
	x, ok := r.X.Overlap(other.X)
	if !ok {
		return Rect[T]{}, false
	}
	y, ok := r.Y.Overlap(other.Y)
	if !ok {
		return Rect[T]{}, false
	}
	return Rect[T]{X: x, Y: y}, true
}

// Union returns the smallest Rect that contains both a and b.
func Union[T Float](a, b Rect[T]) Rect[T] {
	return Rect[T]{X: UnionRange(a.X, b.X), Y: UnionRange(a.Y, b.Y)}
}

// MidX returns the x coordinate of the center of r.
func (r Rect[T]) MidX() T { return r.X.Middle() }

// MidY returns the y coordinate of the center of r.
func (r Rect[T]) MidY() T { return r.Y.Middle() }

// Center returns the center point of r.
func (r Rect[T]) Center() Point[T] {
	return Point[T]{X: r.MidX(), Y: r.MidY()}
}

// CenterXY is like Center but returns the coordinates separately.
func (r Rect[T]) CenterXY() (x, y T) {
	return r.MidX(), r.MidY()
}

// Bottom returns the lowest y value of r.
func (r Rect[T]) Bottom() T { return r.Y.Absolute().Start }

// Top returns the highest y value of r.
func (r Rect[T]) Top() T { return r.Y.Absolute().End }

// Left returns the lowest x value of r.
func (r Rect[T]) Left() T { return r.X.Absolute().Start }

// Right returns the highest x value of r.
func (r Rect[T]) Right() T { return r.X.Absolute().End }

// TopLeft returns the corner at the left and top edges of r.
func (r Rect[T]) TopLeft() Point[T] { return Pt(r.Left(), r.Top()) }

// BottomLeft returns the corner at the left and bottom edges of r.
func (r Rect[T]) BottomLeft() Point[T] { return Pt(r.Left(), r.Bottom()) }

// TopRight returns the corner at the right and top edges of r.
func (r Rect[T]) TopRight() Point[T] { return Pt(r.Right(), r.Top()) }

// BottomRight returns the corner at the right and bottom edges of r.
func (r Rect[T]) BottomRight() Point[T] { return Pt(r.Right(), r.Bottom()) }

// LRBT returns the left, right, bottom, and top edges of r.
func (r Rect[T]) LRBT() (l, rt, b, t T) {
	return r.Left(), r.Right(), r.Bottom(), r.Top()
}

// W returns the width of r.
func (r Rect[T]) W() T { return r.X.Len() }

// H returns the height of r.
func (r Rect[T]) H() T { return r.Y.Len() }

// Size returns the width and height of r as a vector.
func (r Rect[T]) Size() Point[T] {
	return Point[T]{X: r.W(), Y: r.H()}
}

// WH returns the width and height of r.
func (r Rect[T]) WH() (w, h T) {
	return r.W(), r.H()
}

// CenterSize returns the center and size of r. Passing them to
// FromPointSize produces an absolute copy of r.
func (r Rect[T]) CenterSize() (xy, wh Point[T]) {
	return r.Center(), r.Size()
}

// XYWH returns the center coordinates and the dimensions of r.
func (r Rect[T]) XYWH() (x, y, w, h T) {
	return r.MidX(), r.MidY(), r.W(), r.H()
}

// Len returns the length of the longest side of r.
func (r Rect[T]) Len() T {
	return max(r.W(), r.H())
}

// LTWH returns the left and top edges of r along with its dimensions.
func (r Rect[T]) LTWH() (l, t, w, h T) {
	return r.Left(), r.Top(), r.W(), r.H()
}

// LBWH returns the left and bottom edges of r along with its
// dimensions.
func (r Rect[T]) LBWH() (l, b, w, h T) {
	return r.Left(), r.Bottom(), r.W(), r.H()
}

// Contains reports whether p lies within r, edges included.
func (r Rect[T]) Contains(p Point[T]) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}

// StretchToPoint extends the edges of r that p lies beyond so that the
// result contains p.
func (r Rect[T]) StretchToPoint(p Point[T]) Rect[T] {
	return Rect[T]{
		X: r.X.StretchToValue(p.X),
		Y: r.Y.StretchToValue(p.Y),
	}
}

// ShiftX translates r along the x axis by x.
func (r Rect[T]) ShiftX(x T) Rect[T] {
	r.X = r.X.Shift(x)
	return r
}

// ShiftY translates r along the y axis by y.
func (r Rect[T]) ShiftY(y T) Rect[T] {
	r.Y = r.Y.Shift(y)
	return r
}

// Shift translates r by v.
func (r Rect[T]) Shift(v Point[T]) Rect[T] {
	return r.ShiftX(v.X).ShiftY(v.Y)
}

// CenterAt moves r so that its center is at p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	return r.Shift(p.Sub(r.Center()))
}

// RelativeToX returns r with its x position relative to x.
func (r Rect[T]) RelativeToX(x T) Rect[T] {
	r.X = Range[T]{Start: r.X.Start - x, End: r.X.End - x}
	return r
}

// RelativeToY returns r with its y position relative to y.
func (r Rect[T]) RelativeToY(y T) Rect[T] {
	r.Y = Range[T]{Start: r.Y.Start - y, End: r.Y.End - y}
	return r
}

// RelativeTo returns r with its position relative to p, so that p
// becomes the new origin.
func (r Rect[T]) RelativeTo(p Point[T]) Rect[T] {
	return r.RelativeToX(p.X).RelativeToY(p.Y)
}

// PadLeft moves the start of r's x range inwards by pad. Like the
// other single edge padding methods, it works on the stored orientation
// of the range, so for a reversed x range it trims the right edge.
func (r Rect[T]) PadLeft(pad T) Rect[T] {
	r.X = r.X.PadStart(pad)
	return r
}

// PadRight moves the end of r's x range inwards by pad.
func (r Rect[T]) PadRight(pad T) Rect[T] {
	r.X = r.X.PadEnd(pad)
	return r
}

// PadBottom moves the start of r's y range inwards by pad.
func (r Rect[T]) PadBottom(pad T) Rect[T] {
	r.Y = r.Y.PadStart(pad)
	return r
}

// PadTop moves the end of r's y range inwards by pad.
func (r Rect[T]) PadTop(pad T) Rect[T] {
	r.Y = r.Y.PadEnd(pad)
	return r
}

// Pad moves every edge of r inwards by pad. A negative pad grows r.
func (r Rect[T]) Pad(pad T) Rect[T] {
	return Rect[T]{X: r.X.Pad(pad), Y: r.Y.Pad(pad)}
}

// Padding trims each end of r's ranges by the corresponding amount in
// p, following the stored orientation of the ranges.
func (r Rect[T]) Padding(p Padding[T]) Rect[T] {
	return Rect[T]{
		X: r.X.PadEnds(p.X.Start, p.X.End),
		Y: r.Y.PadEnds(p.Y.Start, p.Y.End),
	}
}
