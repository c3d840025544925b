package tictactoe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type machinePlayer interface {
	ChooseMove(board entity.Board) (int, error)
}

// GameController - runs one human vs machine game over a line-oriented console.
type GameController struct {
	logger  *slog.Logger
	in      *bufio.Scanner
	out     io.Writer
	machine machinePlayer
	text    console.Messages
}

func NewGameController(logger *slog.Logger, in io.Reader, out io.Writer, machine machinePlayer, text console.Messages) *GameController {
	return &GameController{
		logger:  logger.With("component", "game_controller"),
		in:      bufio.NewScanner(in),
		out:     out,
		machine: machine,
		text:    text,
	}
}

// Play - plays a single game until someone wins or the board fills up.
// The game is returned even together with an error so the caller can inspect the board.
func (that *GameController) Play(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())
	log := that.logger.With("game_id", game.ID)

	log.Info("game started")

	if err := that.say(that.text.Welcome); err != nil {
		return game, err
	}

	for !game.IsFinished() {
		position, err := that.readHumanMove(ctx, log, game.Board)
		if err != nil {
			return game, err
		}

		if err = game.MakeTurn(entity.Human, position); err != nil {
			return game, fmt.Errorf("failed to apply human move: %w", err)
		}
		log.Debug("human moved", "position", position)

		// a full board after the human's move is a draw, the machine has nowhere to go
		if game.IsFinished() {
			break
		}

		position, err = that.machine.ChooseMove(game.Board)
		if err != nil {
			return game, fmt.Errorf("machine failed to choose a move: %w", err)
		}

		if err = game.MakeTurn(entity.Machine, position); err != nil {
			return game, fmt.Errorf("machine move rejected: %w", err)
		}
		log.Debug("machine moved", "position", position)
	}

	log.Info("game finished", "outcome", game.Outcome())

	return game, that.announce(game)
}

// readHumanMove - prompts until the human names a free cell. Bad positions do not consume the turn.
func (that *GameController) readHumanMove(ctx context.Context, log *slog.Logger, board entity.Board) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("game interrupted: %w", err)
		}

		if err := console.Render(that.out, board); err != nil {
			return 0, err
		}

		if err := that.say(that.text.Prompt); err != nil {
			return 0, err
		}

		position, err := that.readPosition()
		if err != nil {
			return 0, err
		}

		err = board.ValidateMove(position)
		switch {
		case err == nil:
			return position, nil
		case errors.Is(err, apperror.ErrInvalidRange):
			err = that.say(that.text.InvalidRange)
		case errors.Is(err, apperror.ErrCellOccupied):
			err = that.say(that.text.CellOccupied)
		default:
			return 0, err
		}

		if err != nil {
			return 0, err
		}

		log.Info("move rejected", "position", position)
	}
}

func (that *GameController) readPosition() (int, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		return 0, apperror.ErrInputClosed
	}

	line := strings.TrimSpace(that.in.Text())

	position, err := strconv.Atoi(line)
	// a number too large for int is still a number, just off the board
	if errors.Is(err, strconv.ErrRange) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, line)
	}

	return position, nil
}

func (that *GameController) announce(game *entity.Game) error {
	if err := console.Render(that.out, game.Board); err != nil {
		return err
	}

	switch game.Outcome() {
	case entity.OutcomeWin:
		return that.say(that.text.Victory)
	case entity.OutcomeLoss:
		return that.say(that.text.Defeat)
	default:
		return that.say(that.text.Draw)
	}
}

func (that *GameController) say(line string) error {
	if _, err := fmt.Fprintln(that.out, line); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}

	return nil
}
