package websocket

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const (
	actionNewGame  = "game:new"
	actionGetGame  = "game:get"
	actionTurn     = "game:turn"
	actionRestart  = "game:restart"
	actionEvaluate = "board:evaluate"
	actionError    = "error"
)

// Message is a single socket frame: an action and its loosely typed payload.
type Message struct {
	Action  string         `json:"action"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Response is the payload sent back for every action.
type Response struct {
	Game       *entity.Game        `json:"game,omitempty"`
	Available  []entity.Move       `json:"available,omitempty"`
	Evaluation *usecase.Evaluation `json:"evaluation,omitempty"`
	Error      string              `json:"error,omitempty"`
}

type newGamePayload struct {
	Opponent   string `mapstructure:"opponent"`
	HumanFirst *bool  `mapstructure:"human_first"`
}

type gamePayload struct {
	GameID     string `mapstructure:"game_id"`
	HumanFirst *bool  `mapstructure:"human_first"`
}

type turnPayload struct {
	GameID string `mapstructure:"game_id"`
	Row    int    `mapstructure:"row"`
	Col    int    `mapstructure:"col"`
}

type evaluatePayload struct {
	Board string `mapstructure:"board"`
	Side  string `mapstructure:"side"`
}

// decodePayload maps the raw payload onto out; JSON numbers arrive as float64.
func decodePayload(payload map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to build payload decoder: %w", err)
	}

	if err = decoder.Decode(payload); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	return nil
}
