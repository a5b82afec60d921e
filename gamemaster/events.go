package gamemaster

import (
	"github.com/google/uuid"

	"hexblokus/game"
	"hexblokus/hex"
)

// Event reports a change to the session to the UI, audio and persistence
// layers.
type Event interface {
	event()
}

type PiecePickedUp struct {
	Player int
	Piece  int
}

// PiecePlaced is emitted once a piece is committed to the board. Cue picks
// one of the placement sounds.
type PiecePlaced struct {
	Turn      int
	Player    int
	Piece     int
	Rotation  hex.Rotation
	Cells     []hex.Hex
	Cue       int
	BoardHash uint64
}

// PlacementRejected means the piece broke a rule and went back to where it
// was picked up.
type PlacementRejected struct {
	Player int
	Piece  int
	Cells  []hex.Hex
}

// PieceDropped means the piece was released entirely off the board and
// stays where it was dropped.
type PieceDropped struct {
	Player int
	Piece  int
	Anchor hex.Hex
}

type TurnPassed struct {
	Turn   int
	Player int
	Passes int
}

// GameEnded carries the final ranking. Err is set when the ranking could
// not pick a winner.
type GameEnded struct {
	Result game.Result
	Stats  []game.PlayerStats
	Err    error
}

func (PiecePickedUp) event()     {}
func (PiecePlaced) event()       {}
func (PlacementRejected) event() {}
func (PieceDropped) event()      {}
func (TurnPassed) event()        {}
func (GameEnded) event()         {}

// Listener receives every event a session emits, in order.
type Listener interface {
	Notify(session uuid.UUID, e Event)
}

type ListenerFunc func(session uuid.UUID, e Event)

func (f ListenerFunc) Notify(session uuid.UUID, e Event) {
	f(session, e)
}
