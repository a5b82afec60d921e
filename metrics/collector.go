package metrics

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"hexblokus/game"
	"hexblokus/gamemaster"
)

// MoveMetric describes one agent decision.
type MoveMetric struct {
	Step     int
	Player   int
	Piece    int // -1 for a pass
	Cells    int
	Duration time.Duration
}

type GameMetric struct {
	Session     uuid.UUID
	Players     int
	Result      string
	Winner      int // -1 unless a single player won
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	Turns       int
	Placements  int
	Passes      int
	Rejections  int
	Drops       int
	CellsPlaced int
}

// Collector counts session events. It is registered as a session listener.
type Collector interface {
	gamemaster.Listener
	Start(players int)
	Complete() GameMetric
}

type collector struct {
	players     int
	startTime   time.Time
	session     atomic.Value // uuid.UUID
	placements  atomic.Int32
	passes      atomic.Int32
	rejections  atomic.Int32
	drops       atomic.Int32
	cellsPlaced atomic.Int32
	ended       atomic.Value // gamemaster.GameEnded
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(players int) {
	m.startTime = time.Now()
	m.players = players
}

func (m *collector) Notify(session uuid.UUID, e gamemaster.Event) {
	m.session.Store(session)
	switch e := e.(type) {
	case gamemaster.PiecePlaced:
		m.placements.Add(1)
		m.cellsPlaced.Add(int32(len(e.Cells)))
	case gamemaster.TurnPassed:
		m.passes.Add(1)
	case gamemaster.PlacementRejected:
		m.rejections.Add(1)
	case gamemaster.PieceDropped:
		m.drops.Add(1)
	case gamemaster.GameEnded:
		m.ended.Store(e)
	}
}

func (m *collector) Complete() GameMetric {
	end := time.Now()
	metric := GameMetric{
		Players:     m.players,
		Winner:      -1,
		StartTime:   m.startTime,
		EndTime:     end,
		Duration:    end.Sub(m.startTime),
		Placements:  int(m.placements.Load()),
		Passes:      int(m.passes.Load()),
		Rejections:  int(m.rejections.Load()),
		Drops:       int(m.drops.Load()),
		CellsPlaced: int(m.cellsPlaced.Load()),
		Result:      "unfinished",
	}
	metric.Turns = metric.Placements + metric.Passes
	if id, ok := m.session.Load().(uuid.UUID); ok {
		metric.Session = id
	}
	if ended, ok := m.ended.Load().(gamemaster.GameEnded); ok {
		metric.Result = ended.Result.Kind.String()
		if ended.Err == nil && ended.Result.Kind == game.Winner {
			metric.Winner = ended.Result.Winner
		}
	}
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(players int)                  {}
func (m *dummyCollector) Notify(uuid.UUID, gamemaster.Event) {}
func (m *dummyCollector) Complete() GameMetric               { return GameMetric{Winner: -1} }
