package geom

import (
	"fmt"
	"math"
)

// Alignment describes which part of a Range is lined up with another.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignMiddle
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignMiddle:
		return "middle"
	case AlignEnd:
		return "end"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// RangeEdge is one of the two endpoints of a Range.
type RangeEdge int

const (
	RangeStart RangeEdge = iota
	RangeEnd
)

func (e RangeEdge) String() string {
	switch e {
	case RangeStart:
		return "start"
	case RangeEnd:
		return "end"
	default:
		return fmt.Sprintf("RangeEdge(%d)", int(e))
	}
}

// Range is a one dimensional interval. Start is not required to be
// less than End. A Range whose Start is greater than its End is said
// to be reversed, and Absolute returns the equivalent forward Range.
type Range[T Scalar] struct {
	Start, End T
}

// Rng is shorthand for Range[T]{Start: start, End: end}.
func Rng[T Scalar](start, end T) Range[T] {
	return Range[T]{Start: start, End: end}
}

// RangeFromPosLen returns a Range of length l centered on pos.
func RangeFromPosLen[T Scalar](pos, l T) Range[T] {
	half := l / two[T]()
	return Range[T]{Start: pos - half, End: pos - half + l}
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v,%v]", r.Start, r.End)
}

// Middle returns the value halfway between Start and End. For integer
// scalars the result is truncated towards zero.
func (r Range[T]) Middle() T {
	return (r.Start + r.End) / two[T]()
}

// Magnitude returns End-Start. It is negative for reversed ranges of
// signed scalars.
func (r Range[T]) Magnitude() T {
	return r.End - r.Start
}

// Len returns the absolute length of r.
func (r Range[T]) Len() T {
	if r.End < r.Start {
		return r.Start - r.End
	}
	return r.End - r.Start
}

// Direction returns 1 if r runs forwards, -1 if it is reversed, and 0
// if Start and End are equal.
func (r Range[T]) Direction() int {
	switch {
	case r.Start < r.End:
		return 1
	case r.Start > r.End:
		return -1
	default:
		return 0
	}
}

// IsAbsolute reports whether Start <= End.
func (r Range[T]) IsAbsolute() bool {
	return r.Start <= r.End
}

// Absolute returns r with Start and End ordered so that Start <= End.
func (r Range[T]) Absolute() Range[T] {
	if r.Start > r.End {
		return Range[T]{Start: r.End, End: r.Start}
	}
	return r
}

// Invert swaps Start and End.
func (r Range[T]) Invert() Range[T] {
	return Range[T]{Start: r.End, End: r.Start}
}

// HasSameDirection reports whether r and other both run forwards or
// both run backwards. Zero length ranges count as running forwards.
func (r Range[T]) HasSameDirection(other Range[T]) bool {
	return (r.Start <= r.End) == (other.Start <= other.End)
}

// Contains reports whether v lies between the endpoints of r,
// inclusive.
func (r Range[T]) Contains(v T) bool {
	a := r.Absolute()
	return (a.Start <= v) && (v <= a.End)
}

// Overlap returns the absolute range covered by both r and other. Ranges
// that only touch at an endpoint overlap with zero length. If they do
// not overlap at all, ok is false.
func (r Range[T]) Overlap(other Range[T]) (overlap Range[T], ok bool) {
	a, b := r.Absolute(), other.Absolute()
	start, end := max(a.Start, b.Start), min(a.End, b.End)
	if end < start {
		return Range[T]{}, false
	}
	return Range[T]{Start: start, End: end}, true
}

// UnionRange returns the smallest absolute range that covers both a
// and b.
func UnionRange[T Float](a, b Range[T]) Range[T] {
	return Range[T]{
		Start: min(a.Start, a.End, b.Start, b.End),
		End:   max(a.Start, a.End, b.Start, b.End),
	}
}

// Shift moves both endpoints of r by d.
func (r Range[T]) Shift(d T) Range[T] {
	return Range[T]{Start: r.Start + d, End: r.End + d}
}

// PadStart moves Start inwards, towards End, by pad.
func (r Range[T]) PadStart(pad T) Range[T] {
	if r.Start <= r.End {
		r.Start += pad
	} else {
		r.Start -= pad
	}
	return r
}

// PadEnd moves End inwards, towards Start, by pad.
func (r Range[T]) PadEnd(pad T) Range[T] {
	if r.Start <= r.End {
		r.End -= pad
	} else {
		r.End += pad
	}
	return r
}

// Pad moves both endpoints inwards by pad.
func (r Range[T]) Pad(pad T) Range[T] {
	return r.PadStart(pad).PadEnd(pad)
}

// PadEnds moves Start inwards by start and End inwards by end.
func (r Range[T]) PadEnds(start, end T) Range[T] {
	return r.PadStart(start).PadEnd(end)
}

// StretchToValue extends whichever endpoint is exceeded by v so that
// the returned range contains it. The direction of r is preserved. If r
// already contains v, it is returned unchanged.
func (r Range[T]) StretchToValue(v T) Range[T] {
	if r.Start <= r.End {
		switch {
		case v < r.Start:
			r.Start = v
		case v > r.End:
			r.End = v
		}
		return r
	}

	switch {
	case v < r.End:
		r.End = v
	case v > r.Start:
		r.Start = v
	}
	return r
}

// ClampValue returns v limited to the bounds of r.
func (r Range[T]) ClampValue(v T) T {
	a := r.Absolute()
	return min(max(v, a.Start), a.End)
}

// AlignStartOf shifts r so that its lowest edge lines up with the
// lowest edge of other.
func (r Range[T]) AlignStartOf(other Range[T]) Range[T] {
	if r.HasSameDirection(other) {
		return r.Shift(other.Start - r.Start)
	}
	return r.Shift(other.Start - r.End)
}

// AlignEndOf shifts r so that its highest edge lines up with the
// highest edge of other.
func (r Range[T]) AlignEndOf(other Range[T]) Range[T] {
	if r.HasSameDirection(other) {
		return r.Shift(other.End - r.End)
	}
	return r.Shift(other.End - r.Start)
}

// AlignMiddleOf shifts r so that its middle lines up with the middle of
// other.
func (r Range[T]) AlignMiddleOf(other Range[T]) Range[T] {
	return r.Shift(other.Middle() - r.Middle())
}

// AlignBefore shifts r so that it ends where other starts.
func (r Range[T]) AlignBefore(other Range[T]) Range[T] {
	if r.HasSameDirection(other) {
		return r.Shift(other.Start - r.End)
	}
	return r.Shift(other.Start - r.Start)
}

// AlignAfter shifts r so that it starts where other ends.
func (r Range[T]) AlignAfter(other Range[T]) Range[T] {
	if r.HasSameDirection(other) {
		return r.Shift(other.End - r.Start)
	}
	return r.Shift(other.End - r.End)
}

// AlignTo aligns r with other as specified by a.
func (r Range[T]) AlignTo(a Alignment, other Range[T]) Range[T] {
	switch a {
	case AlignMiddle:
		return r.AlignMiddleOf(other)
	case AlignEnd:
		return r.AlignEndOf(other)
	default:
		return r.AlignStartOf(other)
	}
}

// ClosestEdge returns the endpoint of r nearest to v. Ties go to Start.
func (r Range[T]) ClosestEdge(v T) RangeEdge {
	if dist(v, r.Start) <= dist(v, r.End) {
		return RangeStart
	}
	return RangeEnd
}

// Lerp returns the value at fraction t of the way from Start to End.
func Lerp[T Float](r Range[T], t T) T {
	return r.Start + (r.End-r.Start)*t
}

// RoundRange rounds both endpoints of r to the nearest integer.
func RoundRange[T Float](r Range[T]) Range[T] {
	return Range[T]{
		Start: T(math.Round(float64(r.Start))),
		End:   T(math.Round(float64(r.End))),
	}
}

// FloorRange rounds both endpoints of r down.
func FloorRange[T Float](r Range[T]) Range[T] {
	return Range[T]{
		Start: T(math.Floor(float64(r.Start))),
		End:   T(math.Floor(float64(r.End))),
	}
}

func dist[T Scalar](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}
