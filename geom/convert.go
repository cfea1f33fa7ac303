package geom

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"
)

// The conversions in this file map a Rect's bottom left corner to the
// Min of the other type and its top right corner to Max. They do not
// flip the y axis.

// ImageRect returns the smallest image.Rectangle that contains r.
func ImageRect[T Scalar](r Rect[T]) image.Rectangle {
	l, rt, b, t := r.LRBT()
	return image.Rect(
		int(math.Floor(float64(l))),
		int(math.Floor(float64(b))),
		int(math.Ceil(float64(rt))),
		int(math.Ceil(float64(t))),
	)
}

// FromImageRect returns the Rect covering the same area as r.
func FromImageRect(r image.Rectangle) Rect[int] {
	return FromCorners(Pt(r.Min.X, r.Min.Y), Pt(r.Max.X, r.Max.Y))
}

// ToFixed converts r to a 26.6 fixed point rectangle, rounding to the
// nearest 1/64th.
func ToFixed[T Scalar](r Rect[T]) fixed.Rectangle26_6 {
	l, rt, b, t := r.LRBT()
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: toFixed(l), Y: toFixed(b)},
		Max: fixed.Point26_6{X: toFixed(rt), Y: toFixed(t)},
	}
}

// FromFixed returns the Rect covering the same area as r.
func FromFixed(r fixed.Rectangle26_6) Rect[float64] {
	return FromCorners(
		Pt(fromFixed(r.Min.X), fromFixed(r.Min.Y)),
		Pt(fromFixed(r.Max.X), fromFixed(r.Max.Y)),
	)
}

func toFixed[T Scalar](v T) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
