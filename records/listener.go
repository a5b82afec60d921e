package records

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hexblokus/gamemaster"
)

// Recorder is a session listener that buffers placements and writes them
// to the store when the game ends or Flush is called.
type Recorder struct {
	store   *Store
	mu      sync.Mutex
	pending []Placement
}

func NewRecorder(store *Store) *Recorder {
	return &Recorder{store: store}
}

func (r *Recorder) Notify(session uuid.UUID, e gamemaster.Event) {
	switch e := e.(type) {
	case gamemaster.PiecePlaced:
		cells, err := json.Marshal(e.Cells)
		if err != nil {
			log.Error().Err(err).Msgf("session %s: encode placement", session)
			return
		}
		r.mu.Lock()
		r.pending = append(r.pending, Placement{
			GameID:    session.String(),
			Turn:      e.Turn,
			Player:    e.Player,
			Piece:     e.Piece,
			Rotation:  int(e.Rotation),
			Cells:     string(cells),
			BoardHash: fmt.Sprintf("%016x", e.BoardHash),
		})
		r.mu.Unlock()
	case gamemaster.GameEnded:
		if err := r.Flush(); err != nil {
			log.Error().Err(err).Msgf("session %s: store placements", session)
		}
	}
}

// Flush writes buffered placements.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()
	return r.store.SavePlacements(pending)
}
