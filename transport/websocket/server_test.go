package websocket

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/heuristic"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type fakeGames struct {
	game       *entity.Game
	lastMove   entity.Move
	humanFirst *bool
}

func (that *fakeGames) NewGame(_ context.Context, opponent string, humanFirst *bool) (*entity.Game, error) {
	if err := entity.ValidOpponent(opponent); err != nil {
		return nil, err
	}
	that.humanFirst = humanFirst
	that.game = entity.NewGame("g1", opponent, entity.SideFirst)
	return that.game, nil
}

func (that *fakeGames) GetGame(_ context.Context, id string) (*entity.Game, error) {
	if that.game == nil || that.game.ID != id {
		return &entity.Game{}, apperror.ErrGameNotFound
	}
	return that.game, nil
}

func (that *fakeGames) MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Game, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.IsFinished() {
		return game, apperror.ErrGameFinished
	}
	that.lastMove = move
	game.Board = "100020000"
	return game, nil
}

func (that *fakeGames) Restart(ctx context.Context, id string, humanFirst *bool) (*entity.Game, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	that.humanFirst = humanFirst
	game.Reset(entity.SideSecond)
	return game, nil
}

func (that *fakeGames) Evaluate(board string, side entity.Side) (*usecase.Evaluation, error) {
	manager := usecase.NewGameManager(slog.New(slog.NewJSONHandler(io.Discard, nil)), nil, nil, heuristic.Default())
	return manager.Evaluate(board, side)
}

type reply struct {
	Action  string   `json:"action"`
	Payload Response `json:"payload"`
}

func dial(t *testing.T, games *fakeGames) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return dialContext(ctx, t, games)
}

func dialContext(ctx context.Context, t *testing.T, games *fakeGames) *websocket.Conn {
	t.Helper()

	server := New(slog.New(slog.NewJSONHandler(io.Discard, nil)), games)
	httpServer := httptest.NewServer(server.Handler(ctx))
	t.Cleanup(httpServer.Close)

	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, action string, payload map[string]any) reply {
	t.Helper()

	require.NoError(t, conn.WriteJSON(Message{Action: action, Payload: payload}))

	var got reply
	require.NoError(t, conn.ReadJSON(&got))
	return got
}

func TestServer_GameFlow(t *testing.T) {
	games := &fakeGames{}
	conn := dial(t, games)

	// When: a new game is requested
	created := send(t, conn, actionNewGame, map[string]any{"opponent": "network", "human_first": true})

	// Then: the game comes back with every cell available
	require.Equal(t, actionNewGame, created.Action)
	require.Empty(t, created.Payload.Error)
	require.NotNil(t, created.Payload.Game)
	assert.Equal(t, entity.OpponentNetwork, created.Payload.Game.Opponent)
	assert.Len(t, created.Payload.Available, 9)
	require.NotNil(t, games.humanFirst)
	assert.True(t, *games.humanFirst)

	// When: a turn is played with numeric coordinates
	played := send(t, conn, actionTurn, map[string]any{"game_id": "g1", "row": 2, "col": 1})

	// Then: the coordinates are decoded from JSON numbers
	require.Empty(t, played.Payload.Error)
	assert.Equal(t, entity.Move{Row: 2, Col: 1}, games.lastMove)
	assert.Equal(t, "100020000", played.Payload.Game.Board)
	assert.Len(t, played.Payload.Available, 7)

	// When: the game is fetched
	fetched := send(t, conn, actionGetGame, map[string]any{"game_id": "g1"})
	assert.Equal(t, "100020000", fetched.Payload.Game.Board)

	// When: the game is restarted without choosing a side
	restarted := send(t, conn, actionRestart, map[string]any{"game_id": "g1"})
	assert.Nil(t, games.humanFirst)
	assert.Equal(t, "000000000", restarted.Payload.Game.Board)
	assert.Equal(t, entity.SideSecond, restarted.Payload.Game.HumanSide)
}

func TestServer_Errors(t *testing.T) {
	t.Run("Unknown action", func(t *testing.T) {
		conn := dial(t, &fakeGames{})

		got := send(t, conn, "game:undo", nil)

		assert.Equal(t, actionError, got.Action)
		assert.Contains(t, got.Payload.Error, "unknown action")
	})

	t.Run("Unknown game", func(t *testing.T) {
		conn := dial(t, &fakeGames{})

		got := send(t, conn, actionGetGame, map[string]any{"game_id": "nope"})

		assert.Equal(t, actionError, got.Action)
		assert.Contains(t, got.Payload.Error, apperror.ErrGameNotFound.Error())
	})

	t.Run("Turn on a finished game returns the game with the error", func(t *testing.T) {
		games := &fakeGames{game: entity.NewGame("g1", entity.OpponentRandom, entity.SideFirst)}
		games.game.Status = entity.StatusFinished
		conn := dial(t, games)

		got := send(t, conn, actionTurn, map[string]any{"game_id": "g1", "row": 0, "col": 0})

		assert.Equal(t, actionTurn, got.Action)
		assert.Contains(t, got.Payload.Error, apperror.ErrGameFinished.Error())
		require.NotNil(t, got.Payload.Game)
		assert.Empty(t, got.Payload.Available)
	})

	t.Run("Connection survives an error", func(t *testing.T) {
		conn := dial(t, &fakeGames{})

		_ = send(t, conn, actionNewGame, map[string]any{"opponent": "minimax"})
		got := send(t, conn, actionNewGame, map[string]any{})

		assert.Empty(t, got.Payload.Error)
		assert.Equal(t, entity.OpponentHeuristic, got.Payload.Game.Opponent)
	})
}

func TestServer_Shutdown(t *testing.T) {
	// Given: an open socket with a game in progress
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dialContext(ctx, t, &fakeGames{})
	_ = send(t, conn, actionNewGame, map[string]any{"human_first": true})

	// When: the server context is canceled
	cancel()

	// Then: the server closes the socket without waiting for the client
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)

	var netErr net.Error
	if errors.As(err, &netErr) {
		assert.False(t, netErr.Timeout(), "socket was left open after shutdown")
	}
}

func TestServer_Evaluate(t *testing.T) {
	conn := dial(t, &fakeGames{})

	got := send(t, conn, actionEvaluate, map[string]any{"board": "110020000", "side": "first"})

	require.Empty(t, got.Payload.Error)
	require.NotNil(t, got.Payload.Evaluation)
	assert.Equal(t, entity.Move{Row: 0, Col: 2}, got.Payload.Evaluation.Move)

	got = send(t, conn, actionEvaluate, map[string]any{"board": "110020000", "side": "third"})
	assert.Contains(t, got.Payload.Error, apperror.ErrUnknownSide.Error())
}

func TestDecodePayload(t *testing.T) {
	t.Run("Accepts numbers given as strings", func(t *testing.T) {
		var payload turnPayload

		err := decodePayload(map[string]any{"game_id": "g1", "row": "1", "col": float64(2)}, &payload)

		require.NoError(t, err)
		assert.Equal(t, turnPayload{GameID: "g1", Row: 1, Col: 2}, payload)
	})

	t.Run("Rejects values of the wrong shape", func(t *testing.T) {
		var payload turnPayload

		err := decodePayload(map[string]any{"row": []any{1, 2}}, &payload)

		require.Error(t, err)
	})
}
