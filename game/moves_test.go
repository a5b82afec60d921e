package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hexblokus/hex"
)

func catalogShapes() map[int]Shape {
	shapes := make(map[int]Shape)
	for i, p := range Catalog() {
		shapes[i] = p.Shape
	}
	return shapes
}

func TestCatalog(t *testing.T) {
	pieces := Catalog()
	require.Len(t, pieces, 18)
	require.Equal(t, 72, CatalogCells())

	bySize := make(map[int]int)
	for _, p := range pieces {
		require.Equal(t, hex.Zero, p.Shape[0])
		bySize[p.Shape.Size()]++

		// Pieces are connected.
		cells := p.Shape.Cells(hex.Zero, hex.Rot0)
		for _, c := range cells[1:] {
			connected := false
			for _, o := range cells {
				connected = connected || c.IsNeighbour(o)
			}
			require.True(t, connected, "piece at %v", p.Base)
		}
	}
	require.Equal(t, map[int]int{5: 8, 4: 5, 3: 3, 2: 1, 1: 1}, bySize)
}

func TestShapeCells(t *testing.T) {
	shape := NewShape([]hex.Hex{{Q: 3, R: 3}, {Q: 3, R: 4}, {Q: 4, R: 3}})
	require.Equal(t, Shape{{Q: 0, R: 0}, {Q: 0, R: 1}, {Q: 1, R: 0}}, shape)
	require.Equal(t, []hex.Hex{{Q: 7, R: 7}, {Q: 7, R: 8}, {Q: 8, R: 7}}, shape.Cells(start0, hex.Rot0))

	turned := shape.Cells(start0, hex.Rot180)
	require.Equal(t, []hex.Hex{{Q: 7, R: 7}, {Q: 7, R: 6}, {Q: 6, R: 7}}, turned)
	require.Nil(t, NewShape(nil))
}

func TestLegalPlacements(t *testing.T) {
	monomino := map[int]Shape{17: {hex.Zero}}

	t.Run("first piece must cover the start zone", func(t *testing.T) {
		b := newSixPlayerBoard(t)
		placements := LegalPlacements(b, monomino, 0)
		require.Len(t, placements, len(hex.AllRotations))
		for _, p := range placements {
			require.Equal(t, 17, p.Piece)
			require.Equal(t, []hex.Hex{start0}, p.Cells)
		}
	})

	t.Run("later pieces grow from corners", func(t *testing.T) {
		b := newSixPlayerBoard(t)
		require.NoError(t, b.Commit([]hex.Hex{start0}, 0))
		require.Equal(t, []hex.Hex{{Q: 5, R: 8}, {Q: 6, R: 6}, {Q: 8, R: 5}}, Targets(b, 0))

		covered := make(map[hex.Hex]bool)
		for _, p := range LegalPlacements(b, monomino, 0) {
			covered[p.Cells[0]] = true
		}
		require.Equal(t, map[hex.Hex]bool{{Q: 5, R: 8}: true, {Q: 6, R: 6}: true, {Q: 8, R: 5}: true}, covered)
	})

	t.Run("every listed placement is legal and unique", func(t *testing.T) {
		b := newSixPlayerBoard(t)
		shapes := catalogShapes()
		type key struct {
			piece  int
			rot    hex.Rotation
			anchor hex.Hex
		}
		seen := make(map[key]bool)
		placements := LegalPlacements(b, shapes, 3)
		require.NotEmpty(t, placements)
		for _, p := range placements {
			require.Equal(t, Legal, Classify(b, p.Cells, 3))
			require.Equal(t, shapes[p.Piece].Cells(p.Anchor, p.Rotation), p.Cells)
			k := key{p.Piece, p.Rotation, p.Anchor}
			require.False(t, seen[k])
			seen[k] = true
		}
	})

	t.Run("placements follow piece order", func(t *testing.T) {
		b := newSixPlayerBoard(t)
		placements := LegalPlacements(b, catalogShapes(), 0)
		for i := 1; i < len(placements); i++ {
			require.LessOrEqual(t, placements[i-1].Piece, placements[i].Piece)
		}
	})

	t.Run("has legal placement", func(t *testing.T) {
		b := newSixPlayerBoard(t)
		require.True(t, HasLegalPlacement(b, catalogShapes(), 0))
		require.False(t, HasLegalPlacement(b, nil, 0))

		// Seat 0 is boxed in once its start zone is taken and it owns nothing.
		require.NoError(t, b.Commit([]hex.Hex{start0}, 1))
		require.False(t, HasLegalPlacement(b, catalogShapes(), 0))
	})
}
