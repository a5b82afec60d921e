package game

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/maps"

	"hexblokus/hex"
)

// Board maps every existing hex to its cell. A hex missing from the board
// does not exist, which is different from a Disabled cell.
type Board struct {
	cells map[hex.Hex]Cell
}

func newBoard() *Board {
	return &Board{cells: make(map[hex.Hex]Cell)}
}

// Cell returns the cell at h and whether h exists on the board.
func (b *Board) Cell(h hex.Hex) (Cell, bool) {
	c, ok := b.cells[h]
	return c, ok
}

// Contains reports whether h exists on the board.
func (b *Board) Contains(h hex.Hex) bool {
	_, ok := b.cells[h]
	return ok
}

// Len returns the number of hexes on the board, disabled ones included.
func (b *Board) Len() int {
	return len(b.cells)
}

func (b *Board) set(h hex.Hex, c Cell) {
	b.cells[h] = c
}

// Hexes returns all board hexes ordered by q then r.
func (b *Board) Hexes() []hex.Hex {
	hexes := maps.Keys(b.cells)
	sort.Slice(hexes, func(i, j int) bool {
		if hexes[i].Q != hexes[j].Q {
			return hexes[i].Q < hexes[j].Q
		}
		return hexes[i].R < hexes[j].R
	})
	return hexes
}

// Count returns the number of cells of the given kind.
func (b *Board) Count(kind CellKind) int {
	n := 0
	for _, c := range b.cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// OccupiedBy returns the hexes claimed by player, ordered like Hexes.
func (b *Board) OccupiedBy(player int) []hex.Hex {
	return b.filter(func(c Cell) bool { return c.IsOccupiedBy(player) })
}

// StartZones returns player's unclaimed start hexes.
func (b *Board) StartZones(player int) []hex.Hex {
	return b.filter(func(c Cell) bool { return c.IsStartOf(player) })
}

func (b *Board) filter(keep func(Cell) bool) []hex.Hex {
	var result []hex.Hex
	for _, h := range b.Hexes() {
		if keep(b.cells[h]) {
			result = append(result, h)
		}
	}
	return result
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{cells: maps.Clone(b.cells)}
}

// Commit claims cells for player. Every cell must exist and be Empty or a
// StartZone, otherwise the board is left untouched and an error is returned.
// Commit does not check the placement rules; callers classify first.
func (b *Board) Commit(cells []hex.Hex, player int) error {
	if player < 0 || player >= MaxPlayers {
		return fmt.Errorf("commit for player %d: %w", player, ErrInvalidPlayer)
	}
	for _, h := range cells {
		c, ok := b.cells[h]
		if !ok || !c.Playable() {
			return fmt.Errorf("commit %v for player %d: %w", h, player, ErrCellNotPlayable)
		}
	}
	for _, h := range cells {
		b.cells[h] = OccupiedBy(player)
	}
	return nil
}

// Hash returns a digest of every cell, stable across runs.
func (b *Board) Hash() uint64 {
	hasher := xxhash.New()
	var buf [8]byte
	write := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		hasher.Write(buf[:])
	}
	for _, h := range b.Hexes() {
		c := b.cells[h]
		write(h.Q)
		write(h.R)
		write(int(c.Kind))
		write(c.Player)
	}
	return hasher.Sum64()
}
