package game

import "hexblokus/hex"

// Shape is a piece's cells relative to its first cell, which is always hex.Zero.
type Shape []hex.Hex

// NewShape anchors cells so the first one becomes the origin.
func NewShape(cells []hex.Hex) Shape {
	if len(cells) == 0 {
		return nil
	}
	base := cells[0]
	shape := make(Shape, len(cells))
	for i, c := range cells {
		shape[i] = c.Sub(base)
	}
	return shape
}

// Size is the number of cells in the shape.
func (s Shape) Size() int {
	return len(s)
}

// Cells returns the absolute hexes covered by the shape turned by rot about
// its first cell and moved to anchor.
func (s Shape) Cells(anchor hex.Hex, rot hex.Rotation) []hex.Hex {
	cells := make([]hex.Hex, len(s))
	for i, c := range s {
		cells[i] = anchor.Add(c.Rotate(rot))
	}
	return cells
}

// CatalogPiece is one entry of the piece set: its shape and where its first
// cell sits in the tray layout.
type CatalogPiece struct {
	Base  hex.Hex
	Shape Shape
}

// Tray layout of the piece set in hex coordinates, grouped by piece size.
var catalogLayout = [][]hex.Hex{
	// 5 hexes
	{{Q: 0, R: 0}, {Q: 0, R: 1}, {Q: 0, R: 2}, {Q: 0, R: 3}, {Q: 0, R: 4}},
	{{Q: 2, R: -1}, {Q: 2, R: 0}, {Q: 3, R: 0}, {Q: 4, R: 0}, {Q: 4, R: 1}},
	{{Q: 4, R: -2}, {Q: 5, R: -2}, {Q: 6, R: -2}, {Q: 6, R: -1}, {Q: 6, R: 0}},
	{{Q: 8, R: -4}, {Q: 9, R: -4}, {Q: 10, R: -5}, {Q: 9, R: -3}, {Q: 8, R: -2}},
	{{Q: 12, R: -6}, {Q: 13, R: -6}, {Q: 13, R: -5}, {Q: 14, R: -5}, {Q: 14, R: -4}},
	{{Q: 2, R: 2}, {Q: 2, R: 3}, {Q: 2, R: 4}, {Q: 1, R: 5}, {Q: 3, R: 4}},
	{{Q: 5, R: 2}, {Q: 6, R: 2}, {Q: 7, R: 1}, {Q: 8, R: 1}, {Q: 9, R: 1}},
	{{Q: 9, R: -1}, {Q: 10, R: -2}, {Q: 10, R: -1}, {Q: 11, R: -3}, {Q: 11, R: -1}},

	// 4 hexes
	{{Q: 0, R: 7}, {Q: 0, R: 8}, {Q: 0, R: 9}, {Q: 0, R: 10}},
	{{Q: 2, R: 6}, {Q: 2, R: 7}, {Q: 3, R: 7}, {Q: 3, R: 8}},
	{{Q: 4, R: 5}, {Q: 5, R: 4}, {Q: 5, R: 5}, {Q: 6, R: 4}},
	{{Q: 5, R: 7}, {Q: 6, R: 6}, {Q: 7, R: 6}, {Q: 7, R: 7}},
	{{Q: 13, R: -2}, {Q: 13, R: -1}, {Q: 14, R: -1}, {Q: 12, R: 0}},

	// 3 hexes
	{{Q: 8, R: 3}, {Q: 9, R: 3}, {Q: 8, R: 4}},
	{{Q: 11, R: 2}, {Q: 11, R: 3}, {Q: 10, R: 4}},
	{{Q: 14, R: 1}, {Q: 14, R: 2}, {Q: 14, R: 3}},

	{{Q: 11, R: 5}, {Q: 12, R: 4}},
	{{Q: 9, R: 6}},
}

// Catalog returns the piece set every player starts with.
func Catalog() []CatalogPiece {
	pieces := make([]CatalogPiece, len(catalogLayout))
	for i, cells := range catalogLayout {
		pieces[i] = CatalogPiece{Base: cells[0], Shape: NewShape(cells)}
	}
	return pieces
}

// CatalogCells is the total number of cells in one player's piece set.
func CatalogCells() int {
	n := 0
	for _, cells := range catalogLayout {
		n += len(cells)
	}
	return n
}
