// Package records stores finished games and every placement made in them
// in SQLite.
package records

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"hexblokus/hex"
)

// Game is one finished (or abandoned) session.
type Game struct {
	ID         string    `db:"id"`
	Experiment string    `db:"experiment"`
	Players    int       `db:"players"`
	Seats      string    `db:"seats"`
	Result     string    `db:"result"`
	Winner     int       `db:"winner"`
	Turns      int       `db:"turns"`
	StartedAt  time.Time `db:"started_at"`
	EndedAt    time.Time `db:"ended_at"`
}

// Placement is one committed piece.
type Placement struct {
	GameID    string `db:"game_id"`
	Turn      int    `db:"turn"`
	Player    int    `db:"player"`
	Piece     int    `db:"piece"`
	Rotation  int    `db:"rotation"`
	Cells     string `db:"cells"`
	BoardHash string `db:"board_hash"`
}

// HexCells decodes the placement's cells.
func (p Placement) HexCells() ([]hex.Hex, error) {
	var cells []hex.Hex
	if err := json.Unmarshal([]byte(p.Cells), &cells); err != nil {
		return nil, fmt.Errorf("decode cells of game %s turn %d: %w", p.GameID, p.Turn, err)
	}
	return cells, nil
}

// Store wraps a SQLite connection.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		experiment TEXT NOT NULL,
		players INTEGER NOT NULL,
		seats TEXT NOT NULL,
		result TEXT NOT NULL,
		winner INTEGER NOT NULL,
		turns INTEGER NOT NULL,
		started_at DATETIME NOT NULL,
		ended_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS placements (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		player INTEGER NOT NULL,
		piece INTEGER NOT NULL,
		rotation INTEGER NOT NULL,
		cells TEXT NOT NULL,
		board_hash TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_placements_game ON placements(game_id, turn);
	CREATE INDEX IF NOT EXISTS idx_games_experiment ON games(experiment);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// SaveGame inserts or replaces a game row.
func (s *Store) SaveGame(g Game) error {
	_, err := s.conn.NamedExec(`INSERT OR REPLACE INTO games
		(id, experiment, players, seats, result, winner, turns, started_at, ended_at)
		VALUES (:id, :experiment, :players, :seats, :result, :winner, :turns, :started_at, :ended_at)`, g)
	if err != nil {
		return fmt.Errorf("insert game %s: %w", g.ID, err)
	}
	return nil
}

// SavePlacements appends placements in one transaction.
func (s *Store) SavePlacements(placements []Placement) error {
	if len(placements) == 0 {
		return nil
	}

	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range placements {
		_, err := tx.NamedExec(`INSERT INTO placements
			(game_id, turn, player, piece, rotation, cells, board_hash)
			VALUES (:game_id, :turn, :player, :piece, :rotation, :cells, :board_hash)`, p)
		if err != nil {
			return fmt.Errorf("insert placement of game %s turn %d: %w", p.GameID, p.Turn, err)
		}
	}
	return tx.Commit()
}

func (s *Store) Game(id uuid.UUID) (Game, error) {
	var g Game
	err := s.conn.Get(&g, "SELECT * FROM games WHERE id = ?", id.String())
	return g, err
}

// Placements returns a game's placements in turn order.
func (s *Store) Placements(id uuid.UUID) ([]Placement, error) {
	var placements []Placement
	err := s.conn.Select(&placements,
		"SELECT game_id, turn, player, piece, rotation, cells, board_hash FROM placements WHERE game_id = ? ORDER BY turn",
		id.String(),
	)
	return placements, err
}

// Games lists an experiment's games by start time.
func (s *Store) Games(experiment string) ([]Game, error) {
	var games []Game
	err := s.conn.Select(&games, "SELECT * FROM games WHERE experiment = ? ORDER BY started_at", experiment)
	return games, err
}

// Wins counts single winners per seat for an experiment.
func (s *Store) Wins(experiment string) (map[int]int, error) {
	var rows []struct {
		Winner int `db:"winner"`
		Count  int `db:"count"`
	}
	err := s.conn.Select(&rows,
		"SELECT winner, COUNT(*) AS count FROM games WHERE experiment = ? AND winner >= 0 GROUP BY winner",
		experiment,
	)
	if err != nil {
		return nil, err
	}
	wins := make(map[int]int, len(rows))
	for _, r := range rows {
		wins[r.Winner] = r.Count
	}
	return wins, nil
}
