package gamemaster

import "hexblokus/hex"

// Command is an input to Session.Update.
type Command interface {
	command()
}

// PickUp starts dragging a piece of the current player.
type PickUp struct {
	Piece int
}

// PickUpAt starts dragging the current player's piece under the pointer
// at pixel position X, Y.
type PickUpAt struct {
	X, Y float64
}

// Move puts the dragged piece's first cell at Anchor.
type Move struct {
	Anchor hex.Hex
}

// Rotate turns the dragged piece about its first cell.
type Rotate struct {
	Rotation hex.Rotation
}

// Release drops the dragged piece where it is.
type Release struct{}

// Pass ends the current player's turn without placing.
type Pass struct{}

func (PickUp) command()   {}
func (PickUpAt) command() {}
func (Move) command()     {}
func (Rotate) command()   {}
func (Release) command()  {}
func (Pass) command()     {}

// MoveToPixel snaps a pointer position to the hex under it.
func MoveToPixel(layout hex.Layout, x, y float64) Move {
	return Move{Anchor: layout.HexAt(x, y)}
}
