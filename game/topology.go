package game

import (
	"fmt"

	"hexblokus/hex"
)

const (
	MinPlayers = 2
	MaxPlayers = 6
)

// Row lengths of one 60 degree sector, indexed by q. The board is the origin
// plus six rotated copies of the sector.
var (
	boardSector      = []int{0, 11, 10, 10, 9, 9, 8, 8, 6, 4, 2}
	boardSectorSmall = []int{0, 8, 7, 7, 6, 6, 4, 2}
)

var (
	sixPlayerStart   = hex.Hex{Q: 7, R: 7}
	threePlayerStart = hex.Hex{Q: 5, R: 5}
)

// Half extents of the rectangular two and four player board: |q| <= cornerQ
// and |2r+q| <= cornerWidth.
const (
	cornerQ     = 8
	cornerWidth = 15
)

// NewBoard builds the board for playerCount players. Every count shares the
// coordinate space of the six player board; hexes outside the count's
// playing area are Disabled rather than missing.
func NewBoard(playerCount int) (*Board, error) {
	starts, err := StartHexes(playerCount)
	if err != nil {
		return nil, err
	}

	b := newBoard()
	fillSectors(b, boardSector, DisabledCell())

	switch playerCount {
	case 5, 6:
		fillSectors(b, boardSector, EmptyCell())
	case 3:
		fillSectors(b, boardSectorSmall, EmptyCell())
	case 2, 4:
		fillCornerBoard(b)
	}

	for player, h := range starts {
		b.set(h, StartZoneOf(player))
	}
	return b, nil
}

// StartHexes returns the start hex of each seat, indexed by player.
func StartHexes(playerCount int) ([]hex.Hex, error) {
	switch playerCount {
	case 5, 6:
		starts := make([]hex.Hex, 0, playerCount)
		for _, rot := range hex.AllRotations[:playerCount] {
			starts = append(starts, sixPlayerStart.Rotate(rot))
		}
		return starts, nil
	case 3:
		return []hex.Hex{
			threePlayerStart,
			threePlayerStart.Rotate(hex.Rot120Cw),
			threePlayerStart.Rotate(hex.Rot120Ccw),
		}, nil
	case 4:
		return cornerStarts(), nil
	case 2:
		corners := cornerStarts()
		return []hex.Hex{corners[0], corners[2]}, nil
	}
	return nil, fmt.Errorf("%w: %d (want %d to %d)", ErrUnsupportedPlayerCount, playerCount, MinPlayers, MaxPlayers)
}

func fillSectors(b *Board, sector []int, cell Cell) {
	b.set(hex.Zero, cell)
	for _, rot := range hex.AllRotations {
		for q, length := range sector {
			for r := 0; r < length; r++ {
				b.set(hex.Hex{Q: q, R: r}.Rotate(rot), cell)
			}
		}
	}
}

func fillCornerBoard(b *Board) {
	for h, c := range b.cells {
		if c.Kind == Disabled && inCornerBoard(h) {
			b.cells[h] = EmptyCell()
		}
	}
}

func inCornerBoard(h hex.Hex) bool {
	return abs(h.Q) <= cornerQ && abs(2*h.R+h.Q) <= cornerWidth
}

// cornerStarts returns the four corners of the rectangular board, clockwise.
// They come from one corner mirrored across both axes of the rectangle.
func cornerStarts() []hex.Hex {
	corner := hex.Hex{Q: cornerQ, R: (cornerWidth - 1 - cornerQ) / 2}
	mirrorX := func(h hex.Hex) hex.Hex { return hex.Hex{Q: -h.Q, R: h.R + h.Q} }
	mirrorY := func(h hex.Hex) hex.Hex { return hex.Hex{Q: h.Q, R: -h.Q - h.R} }
	return []hex.Hex{
		corner,
		mirrorX(corner),
		mirrorX(mirrorY(corner)),
		mirrorY(corner),
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
