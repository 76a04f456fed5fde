package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

func gameResponse(game *entity.Game) Response {
	response := Response{Game: game}
	if board, err := game.Position(); err == nil && game.IsOngoing() {
		response.Available = tictactoe.AvailableMoves(board)
	}
	return response
}

// handleNewGame - creates a new game against the requested opponent.
func (that *Server) handleNewGame(ctx context.Context, msg *Message) (Response, error) {
	log := that.logger.With("method", "handleNewGame")

	var payload newGamePayload
	if err := decodePayload(msg.Payload, &payload); err != nil {
		return Response{}, err
	}

	if payload.Opponent == "" {
		payload.Opponent = entity.OpponentHeuristic
	}

	game, err := that.uGame.NewGame(ctx, payload.Opponent, payload.HumanFirst)
	if err != nil {
		return Response{}, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created", "game_id", game.ID, "opponent", game.Opponent)

	return gameResponse(game), nil
}

func (that *Server) handleGetGame(ctx context.Context, msg *Message) (Response, error) {
	var payload gamePayload
	if err := decodePayload(msg.Payload, &payload); err != nil {
		return Response{}, err
	}

	game, err := that.uGame.GetGame(ctx, payload.GameID)
	if err != nil {
		return Response{}, fmt.Errorf("failed to get game: %w", err)
	}

	return gameResponse(game), nil
}

// handleGameTurn - plays the human move and returns the game after the bot reply.
func (that *Server) handleGameTurn(ctx context.Context, msg *Message) (Response, error) {
	log := that.logger.With("method", "handleGameTurn")

	var payload turnPayload
	if err := decodePayload(msg.Payload, &payload); err != nil {
		return Response{}, err
	}

	move := entity.Move{Row: payload.Row, Col: payload.Col}

	game, err := that.uGame.MakeTurn(ctx, payload.GameID, move)
	if err != nil {
		if game != nil {
			return gameResponse(game), fmt.Errorf("failed to make turn: %w", err)
		}
		return Response{}, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("turn played", "game_id", game.ID, "move", move.String(), "board", game.Board)

	return gameResponse(game), nil
}

func (that *Server) handleRestart(ctx context.Context, msg *Message) (Response, error) {
	var payload gamePayload
	if err := decodePayload(msg.Payload, &payload); err != nil {
		return Response{}, err
	}

	game, err := that.uGame.Restart(ctx, payload.GameID, payload.HumanFirst)
	if err != nil {
		return Response{}, fmt.Errorf("failed to restart game: %w", err)
	}

	return gameResponse(game), nil
}

func (that *Server) handleEvaluate(_ context.Context, msg *Message) (Response, error) {
	var payload evaluatePayload
	if err := decodePayload(msg.Payload, &payload); err != nil {
		return Response{}, err
	}

	side, err := entity.ParseSide(payload.Side)
	if err != nil {
		return Response{}, err
	}

	evaluation, err := that.uGame.Evaluate(payload.Board, side)
	if err != nil {
		return Response{}, fmt.Errorf("failed to evaluate board: %w", err)
	}

	return Response{Evaluation: evaluation}, nil
}
