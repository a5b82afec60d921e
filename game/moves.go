package game

import (
	"sort"

	"golang.org/x/exp/maps"

	"hexblokus/hex"
)

// Placement is one legal way to put a piece on the board.
type Placement struct {
	Piece    int
	Rotation hex.Rotation
	Anchor   hex.Hex
	Cells    []hex.Hex
}

type placementKey struct {
	piece  int
	rot    hex.Rotation
	anchor hex.Hex
}

// LegalPlacements lists every placement of the given pieces that player may
// make on b. Pieces are keyed by an id of the caller's choosing. The result
// is ordered by piece id, then by the order candidates are discovered.
func LegalPlacements(b *Board, shapes map[int]Shape, player int) []Placement {
	var placements []Placement
	visitPlacements(b, shapes, player, func(p Placement) bool {
		placements = append(placements, p)
		return true
	})
	return placements
}

// HasLegalPlacement reports whether player can place any of the pieces.
func HasLegalPlacement(b *Board, shapes map[int]Shape, player int) bool {
	found := false
	visitPlacements(b, shapes, player, func(Placement) bool {
		found = true
		return false
	})
	return found
}

// Targets returns the hexes a new piece of player's must cover one of: free
// own start zones and playable hexes diagonal to player's pieces.
func Targets(b *Board, player int) []hex.Hex {
	targets := b.StartZones(player)
	seen := make(map[hex.Hex]bool)
	for _, h := range targets {
		seen[h] = true
	}
	for _, own := range b.OccupiedBy(player) {
		for _, d := range Diagonals(own) {
			if seen[d] {
				continue
			}
			if c, ok := b.Cell(d); ok && c.Playable() {
				seen[d] = true
				targets = append(targets, d)
			}
		}
	}
	return targets
}

func visitPlacements(b *Board, shapes map[int]Shape, player int, visit func(Placement) bool) {
	targets := Targets(b, player)
	if len(targets) == 0 {
		return
	}
	ids := maps.Keys(shapes)
	sort.Ints(ids)

	for _, id := range ids {
		shape := shapes[id]
		seen := make(map[placementKey]bool)
		for _, target := range targets {
			for _, rot := range hex.AllRotations {
				for _, offset := range shape {
					anchor := target.Sub(offset.Rotate(rot))
					key := placementKey{piece: id, rot: rot, anchor: anchor}
					if seen[key] {
						continue
					}
					seen[key] = true
					cells := shape.Cells(anchor, rot)
					if Classify(b, cells, player) != Legal {
						continue
					}
					if !visit(Placement{Piece: id, Rotation: rot, Anchor: anchor, Cells: cells}) {
						return
					}
				}
			}
		}
	}
}
