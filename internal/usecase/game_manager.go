package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/heuristic"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	Update(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error)
}

type botService interface {
	MakeMove(board entity.Board, side entity.Side, opponent string) (entity.Move, error)
	DrawHumanSide() entity.Side
}

// Evaluation is the heuristic's answer for a single position.
type Evaluation struct {
	Board   string                 `json:"board"`
	Side    entity.Side            `json:"side"`
	Move    entity.Move            `json:"move"`
	Scores  [entity.BoardCells]int `json:"scores"`
	Outcome string                 `json:"outcome"`
}

type GameManager struct {
	logger    *slog.Logger
	gameRepo  gameRepo
	bot       botService
	evaluator *heuristic.Evaluator
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, bot botService, evaluator *heuristic.Evaluator) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		gameRepo:  gameRepo,
		bot:       bot,
		evaluator: evaluator,
	}
}

// NewGame starts a game against opponent. A nil humanFirst lets the bot draw who starts;
// when the bot starts it moves before the game is returned.
func (that *GameManager) NewGame(ctx context.Context, opponent string, humanFirst *bool) (*entity.Game, error) {
	if err := entity.ValidOpponent(opponent); err != nil {
		return nil, err
	}

	game := entity.NewGame(uuid.NewString(), opponent, that.humanSide(humanFirst))

	if err := that.openingMove(game); err != nil {
		return nil, err
	}

	if err := that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "opponent", opponent, "human", game.HumanSide.String())

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn plays the human move and, if the game goes on, the bot's reply.
// A rejected human move returns the unchanged game with the error.
func (that *GameManager) MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	var rejected bool
	game, err := that.gameRepo.Update(ctx, id, func(game *entity.Game) error {
		if game.IsFinished() {
			rejected = true
			return apperror.ErrGameFinished
		}

		if err := tictactoe.MakeTurn(game, game.HumanSide, move); err != nil {
			rejected = true
			return fmt.Errorf("failed to make turn: %w", err)
		}

		if game.IsBotTurn() {
			return that.botTurn(game)
		}

		return nil
	})
	if err != nil {
		if rejected {
			return game, err
		}
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner, "board", game.Board)
	}

	return game, nil
}

// Restart resets an existing game to the empty board, keeping its ID and opponent.
func (that *GameManager) Restart(ctx context.Context, id string, humanFirst *bool) (*entity.Game, error) {
	side := that.humanSide(humanFirst)

	game, err := that.gameRepo.Update(ctx, id, func(game *entity.Game) error {
		game.Reset(side)
		return that.openingMove(game)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// Evaluate runs the heuristic on a serialized board without touching any stored game.
func (that *GameManager) Evaluate(boardString string, side entity.Side) (*Evaluation, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownSide, side)
	}

	board, err := entity.Decode(boardString)
	if err != nil {
		return nil, err
	}

	move, err := that.evaluator.SelectMove(board, side)
	if err != nil {
		return nil, err
	}

	return &Evaluation{
		Board:   boardString,
		Side:    side,
		Move:    move,
		Scores:  that.evaluator.Scores(board, side),
		Outcome: tictactoe.DetermineOutcome(board).String(),
	}, nil
}

func (that *GameManager) humanSide(humanFirst *bool) entity.Side {
	if humanFirst == nil {
		return that.bot.DrawHumanSide()
	}

	if *humanFirst {
		return entity.SideFirst
	}
	return entity.SideSecond
}

func (that *GameManager) openingMove(game *entity.Game) error {
	if !game.IsBotTurn() {
		return nil
	}

	return that.botTurn(game)
}

func (that *GameManager) botTurn(game *entity.Game) error {
	board, err := game.Position()
	if err != nil {
		return fmt.Errorf("invalid stored board: %w", err)
	}

	side := game.BotSide()

	move, err := that.bot.MakeMove(board, side, game.Opponent)
	if err != nil {
		return fmt.Errorf("bot failed to choose a move: %w", err)
	}

	if err = tictactoe.MakeTurn(game, side, move); err != nil {
		return fmt.Errorf("bot failed to make turn %s: %w", move, err)
	}

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
