package gamemaster

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hexblokus/game"
	"hexblokus/hex"
)

// PlacementCues is the number of sounds a placement may trigger.
const PlacementCues = 5

// CueSource picks the sound played for a placement.
type CueSource interface {
	Intn(n int) int
}

type Option func(*Session)

func WithRules(rules game.Rules) Option {
	return func(s *Session) {
		s.rules = rules
	}
}

func WithLayout(layout hex.Layout) Option {
	return func(s *Session) {
		s.layout = layout
	}
}

func WithCueSource(cues CueSource) Option {
	return func(s *Session) {
		s.cues = cues
	}
}

func WithListener(l Listener) Option {
	return func(s *Session) {
		s.listeners = append(s.listeners, l)
	}
}

// Session is one game: the board, every player's pieces, whose turn it is
// and how many players have passed in a row. All methods must be called
// from one goroutine; a command is fully applied before Update returns.
type Session struct {
	id          uuid.UUID
	board       *game.Board
	rules       game.Rules
	layout      hex.Layout
	cues        CueSource
	listeners   []Listener
	playerCount int

	current int
	passes  int
	turn    int
	pieces  []*Piece

	selected       *Piece
	originAnchor   hex.Hex
	originRotation hex.Rotation

	ended     bool
	result    game.Result
	resultErr error
	stats     []game.PlayerStats
}

// NewSession sets up a game for playerCount players. It fails with
// game.ErrUnsupportedPlayerCount for counts without a board.
func NewSession(playerCount int, opts ...Option) (*Session, error) {
	board, err := game.NewBoard(playerCount)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s := &Session{
		id:          uuid.New(),
		board:       board,
		rules:       game.NewStandardRules(),
		layout:      hex.NewLayout(hex.DefaultRadius),
		playerCount: playerCount,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cues == nil {
		s.cues = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	s.pieces = newPieces(s.layout, playerCount)

	log.Debug().Msgf("session %s: %d players, %d pieces", s.id, playerCount, len(s.pieces))
	return s, nil
}

func (s *Session) ID() uuid.UUID      { return s.id }
func (s *Session) PlayerCount() int   { return s.playerCount }
func (s *Session) CurrentPlayer() int { return s.current }
func (s *Session) Passes() int        { return s.passes }
func (s *Session) Turn() int          { return s.turn }
func (s *Session) Ended() bool        { return s.ended }
func (s *Session) Layout() hex.Layout { return s.layout }

// Board returns the live board. Callers must not modify it; use Clone for
// what-if analysis.
func (s *Session) Board() *game.Board {
	return s.board
}

// Result returns the final ranking once the game has ended, with the
// ranking's error if it could not pick a winner.
func (s *Session) Result() (game.Result, error) {
	if !s.ended {
		return game.Result{}, fmt.Errorf("result: %w", ErrGameRunning)
	}
	return s.result, s.resultErr
}

// Piece returns a snapshot of the piece with the given ID.
func (s *Session) Piece(id int) (Piece, bool) {
	if id < 0 || id >= len(s.pieces) {
		return Piece{}, false
	}
	return *s.pieces[id], true
}

// Pieces returns snapshots of all of player's pieces, placed ones included.
func (s *Session) Pieces(player int) []Piece {
	var result []Piece
	for _, p := range s.pieces {
		if p.Player == player {
			result = append(result, *p)
		}
	}
	return result
}

// Selected returns the piece being dragged, if any.
func (s *Session) Selected() (Piece, bool) {
	if s.selected == nil {
		return Piece{}, false
	}
	return *s.selected, true
}

// RemainingShapes returns player's unplaced pieces keyed by piece ID.
func (s *Session) RemainingShapes(player int) map[int]game.Shape {
	shapes := make(map[int]game.Shape)
	for _, p := range s.pieces {
		if p.Player == player && p.State != Placed {
			shapes[p.ID] = p.Shape
		}
	}
	return shapes
}

// CanPlace reports whether player has any legal placement left.
func (s *Session) CanPlace(player int) bool {
	return game.HasLegalPlacement(s.board, s.RemainingShapes(player), player)
}

// Preview classifies the dragged piece where it is now, for highlighting.
// It returns false when nothing is selected.
func (s *Session) Preview() (game.Outcome, []hex.Hex, bool) {
	if s.selected == nil {
		return game.OffBoard, nil, false
	}
	cells := s.selected.Cells()
	return s.rules.Classify(s.board, cells, s.current), cells, true
}

// Stats returns the ranking input: every player who still has pieces.
func (s *Session) Stats() []game.PlayerStats {
	var stats []game.PlayerStats
	for player := 0; player < s.playerCount; player++ {
		var sizes []int
		for _, shape := range s.RemainingShapes(player) {
			sizes = append(sizes, shape.Size())
		}
		if st, ok := game.NewPlayerStats(player, sizes); ok {
			stats = append(stats, st)
		}
	}
	return stats
}

// Update applies one command. On error the session is unchanged.
func (s *Session) Update(cmd Command) ([]Event, error) {
	if s.ended {
		return nil, ErrGameOver
	}

	var events []Event
	switch c := cmd.(type) {
	case PickUp:
		e, err := s.pickUp(c.Piece)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	case PickUpAt:
		id, err := s.pieceAt(c.X, c.Y)
		if err != nil {
			return nil, err
		}
		e, err := s.pickUp(id)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	case Move:
		if s.selected == nil {
			return nil, ErrNothingSelected
		}
		s.selected.Anchor = c.Anchor
	case Rotate:
		if s.selected == nil {
			return nil, ErrNothingSelected
		}
		s.selected.Rotation = hex.Compose(s.selected.Rotation, c.Rotation)
	case Release:
		e, err := s.release()
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	case Pass:
		events = s.pass()
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}

	for _, e := range events {
		for _, l := range s.listeners {
			l.Notify(s.id, e)
		}
	}
	return events, nil
}

func (s *Session) pickUp(id int) (Event, error) {
	if id < 0 || id >= len(s.pieces) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPiece, id)
	}
	p := s.pieces[id]
	switch {
	case s.selected != nil:
		return nil, ErrPieceAlreadySelected
	case p.State == Placed:
		return nil, fmt.Errorf("%w: %d", ErrPiecePlaced, id)
	case p.Player != s.current:
		return nil, fmt.Errorf("%w: piece %d is player %d's, current player is %d", ErrNotYourPiece, id, p.Player, s.current)
	}

	p.State = Dragging
	s.selected = p
	s.originAnchor = p.Anchor
	s.originRotation = p.Rotation
	return PiecePickedUp{Player: p.Player, Piece: p.ID}, nil
}

// pieceAt finds the piece with a cell under the pixel. The current player's
// pieces win over anyone else's; placed pieces are part of the board.
func (s *Session) pieceAt(x, y float64) (int, error) {
	if s.selected != nil {
		return 0, ErrPieceAlreadySelected
	}
	other := -1
	for _, p := range s.pieces {
		if p.State == Placed || (other >= 0 && p.Player != s.current) {
			continue
		}
		for _, h := range p.Cells() {
			if !s.layout.Contains(h, x, y) {
				continue
			}
			if p.Player == s.current {
				return p.ID, nil
			}
			other = p.ID
			break
		}
	}
	if other >= 0 {
		return other, nil
	}
	return 0, fmt.Errorf("%w: (%.1f, %.1f)", ErrNoPieceAt, x, y)
}

func (s *Session) release() (Event, error) {
	p := s.selected
	if p == nil {
		return nil, ErrNothingSelected
	}
	cells := p.Cells()

	switch s.rules.Classify(s.board, cells, s.current) {
	case game.Legal:
		if err := s.board.Commit(cells, s.current); err != nil {
			return nil, fmt.Errorf("release piece %d: %w", p.ID, err)
		}
		p.State = Placed
		s.selected = nil
		placed := PiecePlaced{
			Turn:      s.turn,
			Player:    s.current,
			Piece:     p.ID,
			Rotation:  p.Rotation,
			Cells:     cells,
			Cue:       s.cues.Intn(PlacementCues),
			BoardHash: s.board.Hash(),
		}
		log.Debug().Msgf("session %s: player %d placed piece %d on %v", s.id, s.current, p.ID, cells)
		s.passes = 0
		s.advance()
		return placed, nil

	case game.Invalid:
		p.Anchor = s.originAnchor
		p.Rotation = s.originRotation
		p.State = Free
		s.selected = nil
		log.Debug().Msgf("session %s: player %d cannot place piece %d on %v", s.id, s.current, p.ID, cells)
		return PlacementRejected{Player: s.current, Piece: p.ID, Cells: cells}, nil

	default:
		p.State = Free
		s.selected = nil
		return PieceDropped{Player: s.current, Piece: p.ID, Anchor: p.Anchor}, nil
	}
}

func (s *Session) pass() []Event {
	if p := s.selected; p != nil {
		p.Anchor = s.originAnchor
		p.Rotation = s.originRotation
		p.State = Free
		s.selected = nil
	}

	s.passes++
	events := []Event{TurnPassed{Turn: s.turn, Player: s.current, Passes: s.passes}}
	s.advance()

	if s.passes >= s.playerCount {
		events = append(events, s.end())
	}
	return events
}

func (s *Session) advance() {
	s.turn++
	s.current = (s.current + 1) % s.playerCount
}

func (s *Session) end() Event {
	s.ended = true
	s.stats = s.Stats()
	s.result, s.resultErr = s.rules.DetermineWinner(s.stats)
	if s.resultErr != nil {
		log.Warn().Err(s.resultErr).Msgf("session %s ended", s.id)
	} else {
		log.Debug().Msgf("session %s ended: %s", s.id, s.result)
	}
	return GameEnded{Result: s.result, Stats: s.stats, Err: s.resultErr}
}
