package game

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedPlayerCount is a fatal setup error: no board exists for the requested count.
	ErrUnsupportedPlayerCount = errors.New("unsupported player count")

	// ErrUndecidedWinner means every tie-break rule was applied and players still tie.
	ErrUndecidedWinner = errors.New("winner undecided")

	ErrCellNotPlayable = errors.New("cell is not playable")
	ErrInvalidPlayer   = errors.New("invalid player index")
)

// UndecidedError lists the players still tied after the last tie-break rule.
type UndecidedError struct {
	Players []int
}

func (e *UndecidedError) Error() string {
	return fmt.Sprintf("%v: players %v are still tied", ErrUndecidedWinner, e.Players)
}

func (e *UndecidedError) Unwrap() error {
	return ErrUndecidedWinner
}
