package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MakeTurn plays move for side on the game, enforcing turn order, and updates its status.
func MakeTurn(gameInstance *entity.Game, side entity.Side, move entity.Move) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	if gameInstance.Turn != side {
		return apperror.ErrNotYourTurn
	}

	board, err := gameInstance.Position()
	if err != nil {
		return fmt.Errorf("invalid stored board: %w", err)
	}

	board, err = ApplyMove(board, move, side)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board = entity.Encode(board)
	updateGameStatus(gameInstance, board, side)

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, board entity.Board, side entity.Side) {
	if winner, line, ok := HasWinner(board); ok {
		gameInstance.Winner = winner.String()
		gameInstance.WinningLine = line
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = 0
		return
	}

	if IsDraw(board) {
		gameInstance.Winner = entity.WinnerDraw
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = 0
		return
	}

	gameInstance.Turn = side.Other()
}
