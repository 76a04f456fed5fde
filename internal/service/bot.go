package service

import (
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/heuristic"
	"github.com/rocketscienceinc/tictactoe-engine/internal/policy"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type BotService interface {
	MakeMove(board entity.Board, side entity.Side, opponent string) (entity.Move, error)
	DrawHumanSide() entity.Side
}

type botService struct {
	logger *slog.Logger

	evaluator *heuristic.Evaluator
	proposer  policy.Proposer
	preferred entity.Move

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewBotService wires the three opponents. proposer may be nil when no network is configured;
// the network opponent then plays the fallback chain only.
func NewBotService(
	logger *slog.Logger,
	evaluator *heuristic.Evaluator,
	proposer policy.Proposer,
	preferred entity.Move,
	rnd *rand.Rand,
) BotService {
	return &botService{
		logger:    logger.With("component", "bot"),
		evaluator: evaluator,
		proposer:  proposer,
		preferred: preferred,
		rnd:       rnd,
	}
}

func (that *botService) MakeMove(board entity.Board, side entity.Side, opponent string) (entity.Move, error) {
	available := tictactoe.AvailableMoves(board)
	if len(available) == 0 {
		return entity.Move{}, apperror.ErrNoMoveAvailable
	}

	switch opponent {
	case entity.OpponentRandom:
		return that.randomMove(available), nil
	case entity.OpponentHeuristic:
		move, err := that.evaluator.SelectMove(board, side)
		if err != nil {
			return entity.Move{}, fmt.Errorf("heuristic failed to select move: %w", err)
		}
		return move, nil
	case entity.OpponentNetwork:
		return that.networkMove(board, side, available), nil
	default:
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrUnknownOpponent, opponent)
	}
}

// networkMove validates the proposal and falls back to the preferred cell, then to a random legal move.
func (that *botService) networkMove(board entity.Board, side entity.Side, available []entity.Move) entity.Move {
	log := that.logger.With("method", "networkMove", "board", board.String())

	if that.proposer != nil {
		move, err := that.proposer.ProposeMove(board, side)
		switch {
		case err != nil:
			log.Warn("policy failed to propose a move", "error", err)
		case slices.Contains(available, move):
			return move
		default:
			log.Info("policy proposed an illegal move", "move", move.String())
		}
	}

	if slices.Contains(available, that.preferred) {
		return that.preferred
	}

	return that.randomMove(available)
}

func (that *botService) randomMove(available []entity.Move) entity.Move {
	that.mu.Lock()
	defer that.mu.Unlock()

	return available[that.rnd.Intn(len(available))]
}

func (that *botService) DrawHumanSide() entity.Side {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.rnd.Intn(2) == 0 {
		return entity.SideFirst
	}
	return entity.SideSecond
}
