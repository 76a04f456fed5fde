package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type uGame interface {
	NewGame(ctx context.Context, opponent string, humanFirst *bool) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Game, error)
	Restart(ctx context.Context, id string, humanFirst *bool) (*entity.Game, error)
	Evaluate(board string, side entity.Side) (*usecase.Evaluation, error)
}

type handlerFunc func(ctx context.Context, msg *Message) (Response, error)

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionGetGame] = server.handleGetGame
	server.handlers[actionTurn] = server.handleGameTurn
	server.handlers[actionRestart] = server.handleRestart
	server.handlers[actionEvaluate] = server.handleEvaluate

	return server
}

// Handler serves the socket endpoint at /ws.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})
	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	// the http server does not track hijacked connections, so shutdown closes them here
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := conn.ReadJSON(&message); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		response, err := that.processMessage(ctx, &message)
		action := message.Action
		if err != nil {
			log.Info("error processing message", "action", action, "error", err)
			response = Response{Game: response.Game, Error: err.Error()}
			if response.Game == nil {
				action = actionError
			}
		}

		if err = conn.WriteJSON(struct {
			Action  string   `json:"action"`
			Payload Response `json:"payload"`
		}{Action: action, Payload: response}); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
	}
}

var ErrUnknownAction = errors.New("unknown action")

// processMessage - dispatches a message to its action handler.
func (that *Server) processMessage(ctx context.Context, msg *Message) (Response, error) {
	if handler, ok := that.handlers[msg.Action]; ok {
		return handler(ctx, msg)
	}
	return Response{}, fmt.Errorf("%w: %s", ErrUnknownAction, msg.Action)
}
