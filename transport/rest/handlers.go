package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type gameUseCase interface {
	NewGame(ctx context.Context, opponent string, humanFirst *bool) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Game, error)
	Restart(ctx context.Context, id string, humanFirst *bool) (*entity.Game, error)
	Evaluate(board string, side entity.Side) (*usecase.Evaluation, error)
}

type createGameRequest struct {
	Opponent   string `json:"opponent"`
	HumanFirst *bool  `json:"human_first,omitempty"`
}

type restartRequest struct {
	HumanFirst *bool `json:"human_first,omitempty"`
}

type evaluateRequest struct {
	Board string      `json:"board"`
	Side  entity.Side `json:"side"`
}

// GameResponse is a game plus its legal moves, so clients can disable filled cells.
type GameResponse struct {
	*entity.Game
	Available []entity.Move `json:"available"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger
	games  gameUseCase
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.Opponent == "" {
		req.Opponent = entity.OpponentHeuristic
	}

	game, err := that.games.NewGame(r.Context(), req.Opponent, req.HumanFirst)
	if err != nil {
		that.fail(w, "createGame", err)
		return
	}

	that.writeGame(w, http.StatusCreated, game)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.fail(w, "getGame", err)
		return
	}

	that.writeGame(w, http.StatusOK, game)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var move entity.Move
	if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	game, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "id"), move)
	if err != nil {
		that.fail(w, "makeTurn", err)
		return
	}

	that.writeGame(w, http.StatusOK, game)
}

func (that *handlers) restart(w http.ResponseWriter, r *http.Request) {
	var req restartRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			that.writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	game, err := that.games.Restart(r.Context(), chi.URLParam(r, "id"), req.HumanFirst)
	if err != nil {
		that.fail(w, "restart", err)
		return
	}

	that.writeGame(w, http.StatusOK, game)
}

func (that *handlers) evaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	evaluation, err := that.games.Evaluate(req.Board, req.Side)
	if err != nil {
		that.fail(w, "evaluate", err)
		return
	}

	that.writeJSON(w, http.StatusOK, evaluation)
}

func (that *handlers) fail(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
	}

	that.writeError(w, status, err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrMalformedBoard),
		errors.Is(err, apperror.ErrOutOfRange),
		errors.Is(err, apperror.ErrUnknownOpponent),
		errors.Is(err, apperror.ErrUnknownSide):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrNoMoveAvailable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeGame(w http.ResponseWriter, status int, game *entity.Game) {
	response := GameResponse{Game: game, Available: []entity.Move{}}

	if game.IsOngoing() {
		if board, err := game.Position(); err == nil {
			response.Available = tictactoe.AvailableMoves(board)
		}
	}

	that.writeJSON(w, status, response)
}

func (that *handlers) writeError(w http.ResponseWriter, status int, err error) {
	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
