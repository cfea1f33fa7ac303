package geom_test

import (
	"slices"
	"testing"

	"deedles.dev/xrect/geom"
	"github.com/stretchr/testify/require"
)

func TestTileEvenVertically(t *testing.T) {
	tiles := make([]geom.Rect[float64], 3)
	geom.TileEvenVertically(tiles, rect(0, 0, 12, 12))
	require.Equal(t, []geom.Rect[float64]{
		rect(0, 8, 12, 12),
		rect(0, 4, 12, 8),
		rect(0, 0, 12, 4),
	}, tiles)
}

func TestTileEvenHorizontally(t *testing.T) {
	tiles := make([]geom.Rect[float64], 3)
	geom.TileEvenHorizontally(tiles, rect(0, 0, 12, 12))
	require.Equal(t, []geom.Rect[float64]{
		rect(0, 0, 4, 12),
		rect(4, 0, 8, 12),
		rect(8, 0, 12, 12),
	}, tiles)
}

func TestTileRightThenDown(t *testing.T) {
	tiles := make([]geom.Rect[float64], 4)
	geom.TileRightThenDown(tiles, rect(0, 0, 12, 12))
	require.Equal(t, []geom.Rect[float64]{
		rect(0, 0, 6, 12),
		rect(6, 6, 12, 12),
		rect(6, 0, 9, 6),
		rect(9, 0, 12, 6),
	}, tiles)

	one := make([]geom.Rect[float64], 1)
	geom.TileRightThenDown(one, rect(0, 0, 12, 12))
	require.Equal(t, rect(0, 0, 12, 12), one[0])
}

func TestTileTwoThirdsSidebar(t *testing.T) {
	tiles := make([]geom.Rect[float64], 3)
	geom.TileTwoThirdsSidebar(tiles, rect(0, 0, 12, 12))
	require.Equal(t, []geom.Rect[float64]{
		rect(0, 0, 8, 12),
		rect(8, 6, 12, 12),
		rect(8, 0, 12, 6),
	}, tiles)
}

func TestTileTwoThirdsSidebarFewTiles(t *testing.T) {
	r := rect(0, 0, 12, 12)

	require.Empty(t, slices.Collect(geom.TiledTwoThirdsSidebar(0, r)))
	require.Empty(t, slices.Collect(geom.TiledTwoThirdsSidebar(-1, r)))
	require.NotPanics(t, func() { geom.TileTwoThirdsSidebar(nil, r) })

	one := make([]geom.Rect[float64], 1)
	geom.TileTwoThirdsSidebar(one, r)
	require.Equal(t, r, one[0])

	two := make([]geom.Rect[float64], 2)
	geom.TileTwoThirdsSidebar(two, r)
	require.Equal(t, []geom.Rect[float64]{
		rect(0, 0, 8, 12),
		rect(8, 0, 12, 12),
	}, two)
}

func TestTileEvenNarrowScalar(t *testing.T) {
	r := geom.Rect[uint8]{X: geom.Rng[uint8](0, 200), Y: geom.Rng[uint8](0, 10)}

	var horiz []geom.Rect[uint8]
	require.NotPanics(t, func() { horiz = slices.Collect(geom.TiledEvenHorizontally(256, r)) })
	require.Len(t, horiz, 256)
	for _, tile := range horiz {
		require.Zero(t, tile.W())
		require.Equal(t, r.Y, tile.Y)
	}

	var vert []geom.Rect[uint8]
	require.NotPanics(t, func() { vert = slices.Collect(geom.TiledEvenVertically(300, r)) })
	require.Len(t, vert, 300)
	for _, tile := range vert {
		require.Zero(t, tile.H())
	}

	tiles := make([]geom.Rect[uint8], 4)
	geom.TileEvenHorizontally(tiles, r)
	require.Equal(t, geom.Rng[uint8](150, 200), tiles[3].X)
}

func TestTileRows(t *testing.T) {
	tiles := make([]geom.Rect[float64], 5)
	geom.TileRows(tiles, rect(0, 0, 12, 12), 2)
	require.Equal(t, []geom.Rect[float64]{
		rect(0, 8, 6, 12),
		rect(6, 8, 12, 12),
		rect(0, 4, 6, 8),
		rect(6, 4, 12, 8),
		rect(0, 0, 12, 4),
	}, tiles)
}

func TestVerticalStack(t *testing.T) {
	var got []geom.Rect[float64]
	for r := range geom.VerticalStack(rect(0, 0, 2, 1)) {
		got = append(got, r)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []geom.Rect[float64]{
		rect(0, 0, 2, 1),
		rect(0, -1, 2, 0),
		rect(0, -2, 2, -1),
	}, got)
}

func TestArrangeVerticalStack(t *testing.T) {
	rects := []geom.Rect[float64]{
		rect(0, 10, 4, 12),
		rect(50, 50, 56, 53),
		rect(0, 0, 1, 1),
	}
	geom.ArrangeVerticalStack(rects)
	require.Equal(t, []geom.Rect[float64]{
		rect(0, 10, 6, 12),
		rect(0, 7, 6, 10),
		rect(0, 6, 6, 7),
	}, rects)
}

func TestAlign(t *testing.T) {
	outer := rect(0, 0, 10, 10)
	inner := geom.FromWH(2.0, 2.0)

	tests := []struct {
		name  string
		edges geom.Edges
		want  geom.Rect[float64]
	}{
		{name: "None", edges: geom.EdgeNone, want: rect(4, 4, 6, 6)},
		{name: "TopLeft", edges: geom.EdgeTop | geom.EdgeLeft, want: rect(0, 8, 2, 10)},
		{name: "Bottom", edges: geom.EdgeBottom, want: rect(4, 0, 6, 2)},
		{name: "Right", edges: geom.EdgeRight, want: rect(8, 4, 10, 6)},
		{name: "TopBottom", edges: geom.EdgeTop | geom.EdgeBottom, want: rect(4, 0, 6, 10)},
		{name: "All", edges: geom.EdgeTop | geom.EdgeBottom | geom.EdgeLeft | geom.EdgeRight, want: outer},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, geom.Align(outer, inner, test.edges))
		})
	}
}
