package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	WinnerDraw = "draw"
)

const (
	OpponentRandom    = "random"
	OpponentHeuristic = "heuristic"
	OpponentNetwork   = "network"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a single human-versus-bot session. The board is kept in its serialized form.
type Game struct {
	ID          string `json:"id"`
	Board       string `json:"board"`
	Turn        Side   `json:"turn"`
	HumanSide   Side   `json:"human_side"`
	Opponent    string `json:"opponent"`
	Status      string `json:"status"`
	Winner      string `json:"winner"`
	WinningLine []Move `json:"winning_line,omitempty"`
}

func NewGame(id, opponent string, humanSide Side) *Game {
	return &Game{
		ID:        id,
		Board:     Encode(EmptyBoard()),
		Turn:      SideFirst,
		HumanSide: humanSide,
		Opponent:  opponent,
		Status:    StatusOngoing,
	}
}

func ValidOpponent(opponent string) error {
	switch opponent {
	case OpponentRandom, OpponentHeuristic, OpponentNetwork:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownOpponent, opponent)
	}
}

func (that *Game) Position() (Board, error) {
	return Decode(that.Board)
}

func (that *Game) BotSide() Side {
	return that.HumanSide.Other()
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotSide()
}

// Reset puts the game back to an empty board with the given human side.
func (that *Game) Reset(humanSide Side) {
	that.Board = Encode(EmptyBoard())
	that.Turn = SideFirst
	that.HumanSide = humanSide
	that.Status = StatusOngoing
	that.Winner = ""
	that.WinningLine = nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
