package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally, the first of which is w wide.
func hsplit[T Scalar](r Rect[T], w T) (left, right Rect[T]) {
	r = r.Absolute()
	mid := r.Left() + w
	left = Rect[T]{X: Rng(r.Left(), mid), Y: r.Y}
	right = Rect[T]{X: Rng(mid, r.Right()), Y: r.Y}
	return left, right
}

func hsplitHalf[T Scalar](r Rect[T]) (left, right Rect[T]) {
	return hsplit(r, r.W()/2)
}

// vsplit splits a rectangle into two rectangles arranged vertically,
// the first of which is h high.
func vsplit[T Scalar](r Rect[T], h T) (top, bottom Rect[T]) {
	r = r.Absolute()
	mid := r.Top() - h
	top = Rect[T]{X: r.X, Y: Rng(mid, r.Top())}
	bottom = Rect[T]{X: r.X, Y: Rng(r.Bottom(), mid)}
	return top, bottom
}

func vsplitHalf[T Scalar](r Rect[T]) (top, bottom Rect[T]) {
	return vsplit(r, r.H()/2)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards. In other
// words,
//
//	tiles := make([]geom.Rect[float64], 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
//
// The tiles are yielded left to right and top to bottom.
func TileRightThenDown[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an interator instead of inserting them
// into a slice.
func TiledRightThenDown[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		split, next := hsplitHalf[T], vsplitHalf[T]

		n := r
		for range numtiles - 1 {
			var c Rect[T]
			c, n = split(n)
			if !yield(c) {
				return
			}
			split, next = next, split
		}

		yield(n)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split in the remaining space. A single tile covers all of r.
func TileTwoThirdsSidebar[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		switch {
		case numtiles <= 0:
			return
		case numtiles == 1:
			yield(r)
			return
		}

		first, rem := hsplit(r, r.W()-r.W()/3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r. In other words,
//
//	tiles := make([]geom.Rect[float64], 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		h := share(r.H(), numtiles)
		c, _ := vsplit(r, h)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Below(c)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]geom.Rect[float64], 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except
// that it yields the tiles from an iterator.
func TiledEvenHorizontally[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		w := share(r.W(), numtiles)
		c, _ := hsplit(r, w)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.RightOf(c)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[T Scalar](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if cols <= 0 {
			return
		}

		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies placed below the previous one
// repeatedly, thus producing an infinite vertical stack of rectangles
// below the first.
func VerticalStack[T Scalar](first Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		r := first
		for {
			if !yield(r) {
				return
			}
			r = r.Below(r)
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
// Each keeps its own height.
func ArrangeVerticalStack[T Scalar](rects []Rect[T]) {
	if len(rects) <= 1 {
		return
	}

	prev := rects[0].Absolute()
	for _, rect := range rects {
		if rect.W() > prev.W() {
			prev.X.End = prev.X.Start + rect.W()
		}
	}
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		rects[i] = Rect[T]{X: prev.X, Y: rects[i].Y.Absolute()}.Below(prev)
		prev = rects[i]
	}
}

// Align moves inner so that the specified edges line up with the
// corresponding edges of outer, stretching it as necessary if opposite
// edges are specified. Along an axis with neither edge specified,
// inner is centered on outer.
func Align[T Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	inner = inner.MiddleOf(outer)
	switch {
	case edges&EdgeTop != 0:
		inner = inner.AlignTopOf(outer)
		if edges&EdgeBottom != 0 {
			inner.Y = Rng(outer.Bottom(), outer.Top())
		}
	case edges&EdgeBottom != 0:
		inner = inner.AlignBottomOf(outer)
	}
	switch {
	case edges&EdgeLeft != 0:
		inner = inner.AlignLeftOf(outer)
		if edges&EdgeRight != 0 {
			inner.X = Rng(outer.Left(), outer.Right())
		}
	case edges&EdgeRight != 0:
		inner = inner.AlignRightOf(outer)
	}

	return inner
}

// share divides total into n parts. If n does not fit in T, the
// division is done in float64 instead.
func share[T Scalar](total T, n int) T {
	d := T(n)
	if float64(d) == float64(n) {
		return total / d
	}
	return T(float64(total) / float64(n))
}

func insertTilesFromSeq[T Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
