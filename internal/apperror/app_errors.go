package apperror

import "errors"

var (
	ErrInvalidRange = errors.New("position is out of range")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidInput = errors.New("input is not a number")
	ErrInputClosed  = errors.New("input closed")
	ErrBoardFull    = errors.New("board is full")
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
)
