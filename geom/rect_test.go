package geom_test

import (
	"testing"

	"deedles.dev/xrect/geom"
	"github.com/stretchr/testify/require"
)

func TestFromXYWH(t *testing.T) {
	r := geom.FromXYWH(0.0, 0.0, 10.0, 10.0)
	l, rt, b, top := r.LRBT()
	require.Equal(t, -5.0, l)
	require.Equal(t, 5.0, rt)
	require.Equal(t, -5.0, b)
	require.Equal(t, 5.0, top)

	require.Equal(t, r, geom.FromPointSize(geom.Pt(0.0, 0.0), geom.Pt(10.0, 10.0)))
	require.Equal(t, r, geom.FromSize(geom.Pt(10.0, 10.0)))
	require.Equal(t, r, geom.FromWH(10.0, 10.0))
}

func TestFromCorners(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Point[int]
	}{
		{name: "BottomLeftTopRight", a: geom.Pt(1, 2), b: geom.Pt(5, 8)},
		{name: "TopRightBottomLeft", a: geom.Pt(5, 8), b: geom.Pt(1, 2)},
		{name: "TopLeftBottomRight", a: geom.Pt(1, 8), b: geom.Pt(5, 2)},
		{name: "BottomRightTopLeft", a: geom.Pt(5, 2), b: geom.Pt(1, 8)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := geom.FromCorners(test.a, test.b)
			require.Equal(t, geom.Rect[int]{X: geom.Rng(1, 5), Y: geom.Rng(2, 8)}, r)
			require.LessOrEqual(t, r.Left(), r.Right())
			require.LessOrEqual(t, r.Bottom(), r.Top())
		})
	}
}

func TestRectAbsolute(t *testing.T) {
	r := geom.Rect[float64]{X: geom.Rng(5.0, -5.0), Y: geom.Rng(3.0, 1.0)}
	a := r.Absolute()
	require.Equal(t, geom.Rect[float64]{X: geom.Rng(-5.0, 5.0), Y: geom.Rng(1.0, 3.0)}, a)
	require.Equal(t, a.Left(), r.Left())
	require.Equal(t, a.Right(), r.Right())
	require.Equal(t, a.Bottom(), r.Bottom())
	require.Equal(t, a.Top(), r.Top())
	require.Equal(t, -5.0, r.Left())
	require.Equal(t, geom.Pt(-5.0, 3.0), r.TopLeft())
	require.Equal(t, geom.Pt(5.0, 1.0), r.BottomRight())
}

func TestRectDimensions(t *testing.T) {
	r := geom.FromCorners(geom.Pt(2.0, 1.0), geom.Pt(8.0, 5.0))
	require.Equal(t, 6.0, r.W())
	require.Equal(t, 4.0, r.H())
	require.Equal(t, geom.Pt(6.0, 4.0), r.Size())
	require.Equal(t, 6.0, r.Len())
	require.Equal(t, geom.Pt(5.0, 3.0), r.Center())

	w, h := r.WH()
	require.Equal(t, 6.0, w)
	require.Equal(t, 4.0, h)

	x, y, w, h := r.XYWH()
	require.Equal(t, []float64{5, 3, 6, 4}, []float64{x, y, w, h})

	l, top, w, h := r.LTWH()
	require.Equal(t, []float64{2, 5, 6, 4}, []float64{l, top, w, h})

	l, b, w, h := r.LBWH()
	require.Equal(t, []float64{2, 1, 6, 4}, []float64{l, b, w, h})

	xy, wh := r.CenterSize()
	require.Equal(t, r, geom.FromPointSize(xy, wh))

	rev := geom.Rect[uint]{X: geom.Rng[uint](10, 2), Y: geom.Rng[uint](3, 3)}
	require.Equal(t, uint(8), rev.W())
	require.Equal(t, uint(0), rev.H())
	require.Equal(t, uint(8), rev.Len())
}

func TestRectContains(t *testing.T) {
	r := geom.FromCorners(geom.Pt(0, 0), geom.Pt(4, 2))
	require.True(t, r.Contains(geom.Pt(0, 0)))
	require.True(t, r.Contains(geom.Pt(2, 1)))
	require.True(t, r.Contains(geom.Pt(4, 2)))
	require.False(t, r.Contains(geom.Pt(5, 1)))
	require.False(t, r.Contains(geom.Pt(2, -1)))
	require.True(t, geom.Pt(1, 1).In(r))
}

func TestRectOverlap(t *testing.T) {
	a := geom.FromXYWH(0.0, 0.0, 4.0, 4.0)
	b := geom.FromXYWH(10.0, 0.0, 4.0, 4.0)
	_, ok := a.Overlap(b)
	require.False(t, ok)

	inv := geom.Rect[float64]{X: geom.Rng(3.0, -1.0), Y: geom.Rng(2.0, 0.0)}
	self, ok := inv.Overlap(inv)
	require.True(t, ok)
	require.Equal(t, inv.Absolute(), self)

	c := geom.FromXYWH(4.0, 1.0, 4.0, 4.0)
	touch, ok := a.Overlap(c)
	require.True(t, ok)
	require.Equal(t, 0.0, touch.W())
	require.Equal(t, 3.0, touch.H())

	d := geom.FromCorners(geom.Pt(1.0, 1.0), geom.Pt(6.0, 6.0))
	o, ok := a.Overlap(d)
	require.True(t, ok)
	require.Equal(t, geom.FromCorners(geom.Pt(1.0, 1.0), geom.Pt(2.0, 2.0)), o)
}

func TestUnion(t *testing.T) {
	a := geom.FromCorners(geom.Pt(0.0, 0.0), geom.Pt(2.0, 2.0))
	b := geom.Rect[float64]{X: geom.Rng(5.0, 3.0), Y: geom.Rng(-1.0, 1.0)}
	require.Equal(t, geom.FromCorners(geom.Pt(0.0, -1.0), geom.Pt(5.0, 2.0)), geom.Union(a, b))
}

func TestRectStretchToPoint(t *testing.T) {
	r := geom.FromCorners(geom.Pt(0, 0), geom.Pt(4, 4))
	require.Equal(t, geom.FromCorners(geom.Pt(-2, 0), geom.Pt(4, 7)), r.StretchToPoint(geom.Pt(-2, 7)))
	require.Equal(t, r, r.StretchToPoint(geom.Pt(2, 2)))
}

func TestRectShift(t *testing.T) {
	r := geom.FromCorners(geom.Pt(0, 0), geom.Pt(4, 4))
	require.Equal(t, geom.FromCorners(geom.Pt(3, 0), geom.Pt(7, 4)), r.ShiftX(3))
	require.Equal(t, geom.FromCorners(geom.Pt(0, -1), geom.Pt(4, 3)), r.ShiftY(-1))
	require.Equal(t, geom.FromCorners(geom.Pt(3, -1), geom.Pt(7, 3)), r.Shift(geom.Pt(3, -1)))

	require.Equal(t, geom.FromWH(2.0, 2.0), geom.FromXYWH(5.0, 5.0, 2.0, 2.0).RelativeTo(geom.Pt(5.0, 5.0)))
	require.Equal(t, geom.FromCorners(geom.Pt(-1, 0), geom.Pt(3, 4)), r.RelativeToX(1))
	require.Equal(t, geom.FromCorners(geom.Pt(0, -2), geom.Pt(4, 2)), r.RelativeToY(2))

	require.Equal(t, geom.FromXYWH(10.0, -3.0, 2.0, 4.0), geom.FromWH(2.0, 4.0).CenterAt(geom.Pt(10.0, -3.0)))
}

func TestRectPad(t *testing.T) {
	r := geom.FromCorners(geom.Pt(0.0, 0.0), geom.Pt(10.0, 10.0))
	require.Equal(t, geom.FromCorners(geom.Pt(1.0, 0.0), geom.Pt(10.0, 10.0)), r.PadLeft(1))
	require.Equal(t, geom.FromCorners(geom.Pt(0.0, 0.0), geom.Pt(9.0, 10.0)), r.PadRight(1))
	require.Equal(t, geom.FromCorners(geom.Pt(0.0, 1.0), geom.Pt(10.0, 10.0)), r.PadBottom(1))
	require.Equal(t, geom.FromCorners(geom.Pt(0.0, 0.0), geom.Pt(10.0, 9.0)), r.PadTop(1))
	require.Equal(t, geom.FromCorners(geom.Pt(2.0, 2.0), geom.Pt(8.0, 8.0)), r.Pad(2))

	p := geom.Padding[float64]{X: geom.Rng(1.0, 2.0), Y: geom.Rng(3.0, 4.0)}
	require.Equal(t, geom.FromCorners(geom.Pt(1.0, 3.0), geom.Pt(8.0, 6.0)), r.Padding(p))
	require.Equal(t, r, r.Padding(geom.NoPadding[float64]()))
}

func TestRectPadStoredOrientation(t *testing.T) {
	rev := geom.Rect[float64]{X: geom.Rng(10.0, 0.0), Y: geom.Rng(10.0, 0.0)}

	require.Equal(t, geom.Rng(9.0, 0.0), rev.PadLeft(1).X)
	require.Equal(t, 9.0, rev.PadLeft(1).Right())
	require.Equal(t, 0.0, rev.PadLeft(1).Left())
	require.Equal(t, 1.0, rev.PadRight(1).Left())
	require.Equal(t, 9.0, rev.PadBottom(1).Top())
	require.Equal(t, 1.0, rev.PadTop(1).Bottom())

	p := geom.Padding[float64]{X: geom.Rng(1.0, 2.0), Y: geom.Rng(3.0, 4.0)}
	require.Equal(t, geom.Rect[float64]{X: geom.Rng(9.0, 2.0), Y: geom.Rng(7.0, 4.0)}, rev.Padding(p))
}

func TestRectPadInverse(t *testing.T) {
	rects := []geom.Rect[float64]{
		geom.FromXYWH(1.0, 2.0, 10.0, 6.0),
		geom.FromCorners(geom.Pt(-3.0, -3.0), geom.Pt(5.0, 1.0)),
		{X: geom.Rng(8.0, 0.0), Y: geom.Rng(4.0, 0.0)},
	}

	for _, r := range rects {
		require.Equal(t, r, r.Pad(1.5).Pad(-1.5), "%v", r)
	}
}

func TestRectString(t *testing.T) {
	require.Equal(t, "(0,0)-(4,2)", geom.FromCorners(geom.Pt(4, 2), geom.Pt(0, 0)).String())
}
