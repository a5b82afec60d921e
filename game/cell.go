package game

import "fmt"

// CellKind is the state of one board hex.
type CellKind int

const (
	Empty     CellKind = iota // Unoccupied and playable
	Disabled                  // Part of the coordinate space but carved out for this player count
	Occupied                  // Permanently claimed by Player
	StartZone                 // Unoccupied; Player's first piece may be placed here unconditionally
)

// Cell is the content of a board hex. Player is only meaningful for
// Occupied and StartZone cells.
type Cell struct {
	Kind   CellKind
	Player int
}

func EmptyCell() Cell             { return Cell{Kind: Empty} }
func DisabledCell() Cell          { return Cell{Kind: Disabled} }
func OccupiedBy(player int) Cell  { return Cell{Kind: Occupied, Player: player} }
func StartZoneOf(player int) Cell { return Cell{Kind: StartZone, Player: player} }

// IsOccupiedBy reports whether the cell is claimed by player.
func (c Cell) IsOccupiedBy(player int) bool {
	return c.Kind == Occupied && c.Player == player
}

// IsStartOf reports whether the cell is player's unclaimed start zone.
func (c Cell) IsStartOf(player int) bool {
	return c.Kind == StartZone && c.Player == player
}

// Playable reports whether a piece may cover the cell at all.
func (c Cell) Playable() bool {
	return c.Kind == Empty || c.Kind == StartZone
}

func (c Cell) String() string {
	switch c.Kind {
	case Empty:
		return "empty"
	case Disabled:
		return "disabled"
	case Occupied:
		return fmt.Sprintf("player%d", c.Player)
	case StartZone:
		return fmt.Sprintf("start%d", c.Player)
	}
	return fmt.Sprintf("Cell(%d)", int(c.Kind))
}
