package gamemaster

import "errors"

var (
	ErrGameOver             = errors.New("game is over")
	ErrUnknownPiece         = errors.New("unknown piece")
	ErrNotYourPiece         = errors.New("piece belongs to another player")
	ErrPieceAlreadySelected = errors.New("a piece is already selected")
	ErrNothingSelected      = errors.New("no piece is selected")
	ErrPiecePlaced          = errors.New("piece is already on the board")
	ErrUnknownCommand       = errors.New("unknown command")
	ErrNoPieceAt            = errors.New("no piece under the pointer")
	ErrGameRunning          = errors.New("game is still running")
)
