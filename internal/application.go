package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// RunApp - plays one game on the process console.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one game reading moves from in and writing the board to out.
// Running out of input counts as the player leaving and is not an error.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	bot := service.NewBotService()
	gameController := tictactoe.NewGameController(logger, in, out, bot, console.MessagesFor(conf.Language))

	game, err := gameController.Play(ctx)
	if errors.Is(err, apperror.ErrInputClosed) {
		log.Info("input closed, leaving the game", "game_id", game.ID)
		return nil
	}

	if err != nil {
		return fmt.Errorf("game %s failed: %w", game.ID, err)
	}

	return nil
}
