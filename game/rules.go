package game

import (
	"fmt"

	"hexblokus/hex"
)

// Outcome classifies a placement attempt.
type Outcome int

const (
	// OffBoard: no cell of the piece is on the board. The piece stays where it was dropped.
	OffBoard Outcome = iota
	// Invalid: the piece is partly off the board or breaks a placement rule. The piece goes back.
	Invalid
	// Legal: the piece may be committed.
	Legal
)

func (o Outcome) String() string {
	switch o {
	case OffBoard:
		return "off-board"
	case Invalid:
		return "invalid"
	case Legal:
		return "legal"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Rules decides placements and the end of game ranking.
type Rules interface {
	Classify(b *Board, cells []hex.Hex, player int) Outcome
	DetermineWinner(stats []PlayerStats) (Result, error)
}

// diagonal is a corner neighbour offset with the two edge neighbours that
// flank it.
type diagonal struct {
	offset hex.Hex
	flank1 hex.Hex
	flank2 hex.Hex
}

var diagonals = [6]diagonal{
	{hex.Hex{Q: 1, R: 1}, hex.Hex{Q: 1, R: 0}, hex.Hex{Q: 0, R: 1}},
	{hex.Hex{Q: -1, R: 2}, hex.Hex{Q: 0, R: 1}, hex.Hex{Q: -1, R: 1}},
	{hex.Hex{Q: -2, R: 1}, hex.Hex{Q: -1, R: 1}, hex.Hex{Q: -1, R: 0}},
	{hex.Hex{Q: -1, R: -1}, hex.Hex{Q: -1, R: 0}, hex.Hex{Q: 0, R: -1}},
	{hex.Hex{Q: 1, R: -2}, hex.Hex{Q: 0, R: -1}, hex.Hex{Q: 1, R: -1}},
	{hex.Hex{Q: 2, R: -1}, hex.Hex{Q: 1, R: -1}, hex.Hex{Q: 1, R: 0}},
}

// Diagonals returns the six corner neighbours of h.
func Diagonals(h hex.Hex) [6]hex.Hex {
	var result [6]hex.Hex
	for i, d := range diagonals {
		result[i] = h.Add(d.offset)
	}
	return result
}

// Classify decides what happens when player drops a piece covering cells.
//
// A piece entirely off the board is OffBoard and a piece partly off the
// board is Invalid. On the board, every cell must be Empty or a StartZone.
// Covering one of player's own start zones is then enough. Otherwise no
// cell may share an edge with player's pieces, and some cell must touch one
// of them at a corner that is not closed off by two flanking cells of one
// other player.
func Classify(b *Board, cells []hex.Hex, player int) Outcome {
	onBoard := 0
	for _, h := range cells {
		if b.Contains(h) {
			onBoard++
		}
	}
	switch {
	case onBoard == 0:
		return OffBoard
	case onBoard < len(cells):
		return Invalid
	}

	if canPlace(b, cells, player) {
		return Legal
	}
	return Invalid
}

func canPlace(b *Board, cells []hex.Hex, player int) bool {
	ownStart := false
	for _, h := range cells {
		c, ok := b.Cell(h)
		if !ok || !c.Playable() {
			return false
		}
		if c.IsStartOf(player) {
			ownStart = true
		}
	}
	// A player's first piece may always cover their start zone.
	if ownStart {
		return true
	}

	for _, h := range cells {
		for _, n := range h.Neighbours() {
			if belongsTo(b, n, player) {
				return false
			}
		}
	}

	for _, h := range cells {
		for _, d := range diagonals {
			if belongsTo(b, h.Add(d.offset), player) &&
				!heldBySameOpponent(b, h.Add(d.flank1), h.Add(d.flank2)) {
				return true
			}
		}
	}
	return false
}

func belongsTo(b *Board, h hex.Hex, player int) bool {
	c, ok := b.Cell(h)
	return ok && c.IsOccupiedBy(player)
}

// heldBySameOpponent reports whether both hexes are occupied by one player.
// The caller has already ruled out the acting player owning either of them.
func heldBySameOpponent(b *Board, h1, h2 hex.Hex) bool {
	c1, ok1 := b.Cell(h1)
	c2, ok2 := b.Cell(h2)
	return ok1 && ok2 && c1.Kind == Occupied && c2.Kind == Occupied && c1.Player == c2.Player
}
