package game

import "hexblokus/hex"

// StandardRules are the corner-touch placement rules with the two-step
// tie-break ranking.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (r *StandardRules) Classify(b *Board, cells []hex.Hex, player int) Outcome {
	return Classify(b, cells, player)
}

func (r *StandardRules) DetermineWinner(stats []PlayerStats) (Result, error) {
	return DetermineWinner(stats)
}
