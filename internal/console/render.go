package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	border = "+-------+-------+-------+\n"
	spacer = "|       |       |       |\n"
)

// Render - writes the board as a 3x3 ASCII grid, every cell value centered in its box.
func Render(w io.Writer, board entity.Board) error {
	var sb strings.Builder

	sb.WriteString(border)
	for row := 0; row < 3; row++ {
		sb.WriteString(spacer)
		for col := 0; col < 3; col++ {
			sb.WriteString("|   " + board[row*3+col] + "   ")
		}
		sb.WriteString("|\n")
		sb.WriteString(spacer)
		sb.WriteString(border)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}
