package game

import "fmt"

// PlayerStats is what the ranking looks at for one player: the cells still
// in their tray and the size of their largest unplaced piece.
type PlayerStats struct {
	Player       int
	Blocks       int
	LargestPiece int
}

// NewPlayerStats summarises the sizes of player's unplaced pieces. It
// returns false when there is nothing left, since such a player takes no
// part in the ranking.
func NewPlayerStats(player int, sizes []int) (PlayerStats, bool) {
	stats := PlayerStats{Player: player}
	for _, size := range sizes {
		if size <= 0 {
			continue
		}
		stats.Blocks += size
		stats.LargestPiece = max(stats.LargestPiece, size)
	}
	return stats, stats.Blocks > 0
}

type ResultKind int

const (
	Winner ResultKind = iota
	// Draw means nobody had pieces left to rank.
	Draw
	// Undecided means the tie-breaks ran out with several players still level.
	Undecided
)

func (k ResultKind) String() string {
	switch k {
	case Winner:
		return "winner"
	case Draw:
		return "draw"
	case Undecided:
		return "undecided"
	}
	return fmt.Sprintf("ResultKind(%d)", int(k))
}

// Result is the end of game ranking. Winner is only meaningful for the
// Winner kind; Tied lists the players left level when Undecided.
type Result struct {
	Kind   ResultKind
	Winner int
	Tied   []int
}

func (r Result) String() string {
	switch r.Kind {
	case Winner:
		return fmt.Sprintf("player %d wins", r.Winner)
	case Undecided:
		return fmt.Sprintf("undecided between players %v", r.Tied)
	}
	return r.Kind.String()
}

// DetermineWinner ranks players by fewest blocks remaining, then by the
// smallest largest piece remaining. A tie after both steps yields an
// Undecided result with an *UndecidedError.
func DetermineWinner(stats []PlayerStats) (Result, error) {
	if len(stats) == 0 {
		return Result{Kind: Draw}, nil
	}

	survivors := keepMinimum(stats, func(s PlayerStats) int { return s.Blocks })
	if len(survivors) == 1 {
		return Result{Kind: Winner, Winner: survivors[0].Player}, nil
	}

	survivors = keepMinimum(survivors, func(s PlayerStats) int { return s.LargestPiece })
	if len(survivors) == 1 {
		return Result{Kind: Winner, Winner: survivors[0].Player}, nil
	}

	tied := make([]int, len(survivors))
	for i, s := range survivors {
		tied[i] = s.Player
	}
	return Result{Kind: Undecided, Tied: tied}, &UndecidedError{Players: tied}
}

func keepMinimum(stats []PlayerStats, key func(PlayerStats) int) []PlayerStats {
	best := key(stats[0])
	for _, s := range stats[1:] {
		best = min(best, key(s))
	}
	var result []PlayerStats
	for _, s := range stats {
		if key(s) == best {
			result = append(result, s)
		}
	}
	return result
}
