package entity

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	Human   = "O"
	Machine = "X"
	Tie     = "-"

	BoardSize = 9
)

// WinCombos - the eight lines (rows, columns, diagonals) as zero-based cell indexes.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - nine cells in row-major order, addressed by 1-based position.
// A free cell holds its own position label ("1".."9"), a claimed cell holds Human or Machine.
type Board [BoardSize]string

// NewBoard - returns a board with every cell free.
func NewBoard() Board {
	var board Board
	for i := range board {
		board[i] = strconv.Itoa(i + 1)
	}

	return board
}

// IsOccupied - positions off the board are never occupied.
func (that Board) IsOccupied(position int) bool {
	if position < 1 || position > BoardSize {
		return false
	}

	cell := that[position-1]
	return cell == Human || cell == Machine
}

// Set - writes the marker without any checks, callers validate the move first.
func (that *Board) Set(position int, marker string) {
	that[position-1] = marker
}

// ValidateMove - checks that the position is on the board and still free.
func (that Board) ValidateMove(position int) error {
	if position < 1 || position > BoardSize {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidRange, position)
	}

	if that.IsOccupied(position) {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, position)
	}

	return nil
}

func (that Board) IsFull() bool {
	claimed := 0
	for _, cell := range that {
		if cell == Human || cell == Machine {
			claimed++
		}
	}

	return claimed == BoardSize
}

// HasWon - reports whether any line is made of three marker cells.
func (that Board) HasWon(marker string) bool {
	for _, combo := range WinCombos {
		if that[combo[0]] == marker && that[combo[1]] == marker && that[combo[2]] == marker {
			return true
		}
	}

	return false
}

func (that Board) OpenPositions() []int {
	positions := make([]int, 0, BoardSize)
	for i := range that {
		if !that.IsOccupied(i + 1) {
			positions = append(positions, i+1)
		}
	}

	return positions
}
