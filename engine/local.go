package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hexblokus/agent"
	"hexblokus/game"
	"hexblokus/gamemaster"
	"hexblokus/hex"
	"hexblokus/metrics"
)

const DefaultMaxTurns = 500

var ErrMaxTurns = errors.New("turn limit reached before the game ended")

type Option func(e *Engine)

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithCollector records the session's events in c.
func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.collector = c
		}
	}
}

// WithSessionOptions passes options through to the session.
func WithSessionOptions(opts ...gamemaster.Option) Option {
	return func(e *Engine) {
		e.sessionOpts = append(e.sessionOpts, opts...)
	}
}

// Engine plays one session headlessly with one agent per seat.
type Engine struct {
	Session     *gamemaster.Session
	Agents      []agent.Agent
	maxTurns    int
	collector   metrics.Collector
	sessionOpts []gamemaster.Option
}

// LocalEngine sets up a session with a seat for each agent.
func LocalEngine(agents []agent.Agent, options ...Option) (*Engine, error) {
	e := &Engine{
		Agents:    agents,
		maxTurns:  DefaultMaxTurns,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}

	opts := append([]gamemaster.Option{gamemaster.WithListener(e.collector)}, e.sessionOpts...)
	session, err := gamemaster.NewSession(len(agents), opts...)
	if err != nil {
		return nil, fmt.Errorf("local engine: %w", err)
	}
	e.Session = session
	e.collector.Start(len(agents))
	return e, nil
}

// Run executes the game loop until every player has passed in a row or
// the turn limit is hit.
func (e *Engine) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	s := e.Session
	log.Info().Msgf("session %s: player %d is starting", s.ID(), s.CurrentPlayer())

	var moveMetrics []metrics.MoveMetric
	for !s.Ended() {
		if s.Turn() >= e.maxTurns {
			return game.Result{}, e.collector.Complete(), moveMetrics, fmt.Errorf("%w: %d turns", ErrMaxTurns, e.maxTurns)
		}

		player := s.CurrentPlayer()
		start := time.Now()
		placement, ok := e.Agents[player].FindMove(s)
		metric := metrics.MoveMetric{
			Step:     s.Turn() + 1,
			Player:   player,
			Piece:    -1,
			Duration: time.Since(start),
		}

		if ok {
			if err := Play(s, placement); err != nil {
				return game.Result{}, e.collector.Complete(), moveMetrics, err
			}
			metric.Piece = placement.Piece
			metric.Cells = len(placement.Cells)
		} else if _, err := s.Update(gamemaster.Pass{}); err != nil {
			return game.Result{}, e.collector.Complete(), moveMetrics, err
		}
		moveMetrics = append(moveMetrics, metric)
	}

	result, err := s.Result()
	if err != nil && !errors.Is(err, game.ErrUndecidedWinner) {
		return result, e.collector.Complete(), moveMetrics, err
	}
	log.Info().Msgf("session %s: %s after %d turns", s.ID(), result, s.Turn())
	return result, e.collector.Complete(), moveMetrics, err
}

// Play drives the session through picking up, turning, moving and
// releasing a piece so it lands on placement. It fails unless the session
// commits the piece.
func Play(s *gamemaster.Session, placement game.Placement) error {
	piece, ok := s.Piece(placement.Piece)
	if !ok {
		return fmt.Errorf("play: %w: %d", gamemaster.ErrUnknownPiece, placement.Piece)
	}
	turn := hex.Compose(placement.Rotation, piece.Rotation.Inverse())

	cmds := []gamemaster.Command{
		gamemaster.PickUp{Piece: placement.Piece},
		gamemaster.Rotate{Rotation: turn},
		gamemaster.Move{Anchor: placement.Anchor},
		gamemaster.Release{},
	}
	var last []gamemaster.Event
	for _, cmd := range cmds {
		events, err := s.Update(cmd)
		if err != nil {
			return fmt.Errorf("play piece %d: %w", placement.Piece, err)
		}
		last = events
	}
	if len(last) == 0 {
		return fmt.Errorf("play piece %d: no release event", placement.Piece)
	}
	if _, placed := last[0].(gamemaster.PiecePlaced); !placed {
		return fmt.Errorf("play piece %d: session answered %T", placement.Piece, last[0])
	}
	return nil
}
