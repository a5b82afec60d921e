package gamemaster

import (
	"hexblokus/game"
	"hexblokus/hex"
)

type PieceState int

const (
	Free PieceState = iota
	Dragging
	Placed
)

func (s PieceState) String() string {
	switch s {
	case Free:
		return "free"
	case Dragging:
		return "dragging"
	case Placed:
		return "placed"
	}
	return "unknown"
}

// Piece is one player's tile. While Free or Dragging it sits at Anchor
// turned by Rotation, usually off the board in its owner's tray.
type Piece struct {
	ID       int
	Player   int
	Shape    game.Shape
	Anchor   hex.Hex
	Rotation hex.Rotation
	State    PieceState
}

// Cells returns the hexes the piece covers where it currently is.
func (p *Piece) Cells() []hex.Hex {
	return p.Shape.Cells(p.Anchor, p.Rotation)
}

// Tray origins in hex widths, one per seat, arranged around the board.
var trayOrigins = [game.MaxPlayers][2]float64{
	{10, -7},
	{-20, -7},
	{-25, 4},
	{-20, 15},
	{10, 15},
	{15, 4},
}

// TrayHex returns the hex at the corner of player's tray.
func TrayHex(layout hex.Layout, player int) hex.Hex {
	origin := trayOrigins[player%game.MaxPlayers]
	w := layout.Width()
	return layout.HexAt(origin[0]*w, origin[1]*w)
}

// newPieces lays out a full catalog in every seat's tray. Piece IDs are
// dense: player p owns IDs p*len(catalog) up to (p+1)*len(catalog).
func newPieces(layout hex.Layout, playerCount int) []*Piece {
	catalog := game.Catalog()
	pieces := make([]*Piece, 0, playerCount*len(catalog))
	for player := 0; player < playerCount; player++ {
		tray := TrayHex(layout, player)
		for _, entry := range catalog {
			pieces = append(pieces, &Piece{
				ID:     len(pieces),
				Player: player,
				Shape:  entry.Shape,
				Anchor: tray.Add(entry.Base),
			})
		}
	}
	return pieces
}
