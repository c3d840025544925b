package service

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type BotService interface {
	ChooseMove(board entity.Board) (int, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService - a bot that plays uniformly random moves.
func NewBotService() BotService {
	return NewSeededBotService(rand.Uint64(), rand.Uint64())
}

// NewSeededBotService - same as NewBotService but with a reproducible move sequence.
func NewSeededBotService(seed1, seed2 uint64) BotService {
	return &botService{
		rnd: rand.New(rand.NewPCG(seed1, seed2)), //nolint: gosec // it's ok
	}
}

// ChooseMove - samples positions 1..9 until one is free. No strategy on purpose.
func (that *botService) ChooseMove(board entity.Board) (int, error) {
	if board.IsFull() {
		return 0, apperror.ErrBoardFull
	}

	for {
		position := that.rnd.IntN(entity.BoardSize) + 1
		if !board.IsOccupied(position) {
			return position, nil
		}
	}
}
