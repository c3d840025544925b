package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Outcome - how a finished game ended from the human's point of view.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
)

type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Winner string `json:"winner"`
	Status string `json:"status"`
	Turn   string `json:"player_turn"`
}

// NewGame - the human always opens.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  NewBoard(),
		Turn:   Human,
		Status: StatusOngoing,
	}
}

func (that *Game) DetermineGameResult() string {
	switch {
	case that.Board.HasWon(Human):
		return Human
	case that.Board.HasWon(Machine):
		return Machine
	// the game will continue until all the squares are full
	case that.Board.IsFull():
		return Tie
	default:
		return ""
	}
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins or tie
	case Human, Machine, Tie:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(marker string, position int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != marker {
		return fmt.Errorf("%w: %s", apperror.ErrNotYourTurn, marker)
	}

	if err := that.Board.ValidateMove(position); err != nil {
		return err
	}

	that.Board.Set(position, marker)

	if that.Turn == Human {
		that.Turn = Machine
	} else {
		that.Turn = Human
	}

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) Outcome() Outcome {
	if !that.IsFinished() {
		return OutcomeNone
	}

	switch that.Winner {
	case Human:
		return OutcomeWin
	case Machine:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}
