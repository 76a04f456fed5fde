package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func TestNewGame(t *testing.T) {
	// Given: a human playing second against the heuristic bot
	game := NewGame("123", OpponentHeuristic, SideSecond)

	// Then: the game starts empty, ongoing, with the first side to move
	expected := &Game{
		ID:        "123",
		Board:     "000000000",
		Turn:      SideFirst,
		HumanSide: SideSecond,
		Opponent:  OpponentHeuristic,
		Status:    StatusOngoing,
	}
	require.Equal(t, expected, game)
	assert.Equal(t, SideFirst, game.BotSide())
	assert.True(t, game.IsBotTurn())
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is finished
		isFinished := game.IsFinished()

		// Then: it should return true
		assert.True(t, isFinished)
		assert.False(t, game.IsOngoing())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is ongoing
		isOngoing := game.IsOngoing()

		// Then: it should return true
		assert.True(t, isOngoing)
	})

	t.Run("IsBotTurn is false once the game is finished", func(t *testing.T) {
		// Given: a finished game where the turn field still names the bot
		game := &Game{Status: StatusFinished, HumanSide: SideFirst, Turn: SideSecond}

		// Then: the bot is not asked to move
		assert.False(t, game.IsBotTurn())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return nil error
		assert.NoError(t, err)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrGameFinished
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Returns ErrUnknownGameStatus for anything else", func(t *testing.T) {
		// Given: a game with a status that was never defined
		game := &Game{Status: "waiting"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrUnknownGameStatus
		require.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game
	game := NewGame("123", OpponentRandom, SideFirst)
	game.Board = "111220000"
	game.Status = StatusFinished
	game.Winner = SideFirst.String()
	game.Turn = 0
	game.WinningLine = []Move{{0, 0}, {0, 1}, {0, 2}}

	// When: the game is reset with the human now playing second
	game.Reset(SideSecond)

	// Then: the board is empty and only the ID and opponent survive
	assert.Equal(t, NewGame("123", OpponentRandom, SideSecond), game)
}

func TestValidOpponent(t *testing.T) {
	for _, opponent := range []string{OpponentRandom, OpponentHeuristic, OpponentNetwork} {
		assert.NoError(t, ValidOpponent(opponent), opponent)
	}

	require.ErrorIs(t, ValidOpponent("minimax"), apperror.ErrUnknownOpponent)
}
