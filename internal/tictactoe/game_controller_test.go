package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123", entity.OpponentHeuristic, entity.SideFirst)

		// When: the first side plays the top left cell
		err := MakeTurn(game, entity.SideFirst, entity.Move{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: the board holds the mark and the turn passes on
		expected := entity.NewGame("123", entity.OpponentHeuristic, entity.SideFirst)
		expected.Board = "100000000"
		expected.Turn = entity.SideSecond

		require.Equal(t, expected, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: the first side already holds cell 0
		game := entity.NewGame("123", entity.OpponentHeuristic, entity.SideFirst)
		require.NoError(t, MakeTurn(game, entity.SideFirst, entity.Move{Row: 0, Col: 0}))

		// When: the second side plays the same cell
		err := MakeTurn(game, entity.SideSecond, entity.Move{Row: 0, Col: 0})

		// Then: the move is rejected and nothing changes
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, "100000000", game.Board)
		assert.Equal(t, entity.SideSecond, game.Turn)
	})

	t.Run("Error when it is not the player's turn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123", entity.OpponentHeuristic, entity.SideFirst)

		// When: the second side tries to move first
		err := MakeTurn(game, entity.SideSecond, entity.Move{Row: 1, Col: 1})

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, "000000000", game.Board)
	})

	t.Run("Error on move outside the grid", func(t *testing.T) {
		game := entity.NewGame("123", entity.OpponentHeuristic, entity.SideFirst)

		err := MakeTurn(game, entity.SideFirst, entity.Move{Row: 0, Col: 9})

		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: the first side has two in the top row
		game := entity.NewGame("123", entity.OpponentRandom, entity.SideFirst)
		game.Board = "110220000"

		// When: it completes the row
		err := MakeTurn(game, entity.SideFirst, entity.Move{Row: 0, Col: 2})

		// Then: the game is finished with the winning line recorded
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, "first", game.Winner)
		assert.Equal(t, entity.Side(0), game.Turn)
		assert.Equal(t, []entity.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, game.WinningLine)
	})

	t.Run("Filling the board without a line is a draw", func(t *testing.T) {
		// Given: one empty cell left that completes no line
		game := entity.NewGame("123", entity.OpponentRandom, entity.SideFirst)
		game.Board = "121211210"
		game.Turn = entity.SideSecond

		// When: the second side fills it
		err := MakeTurn(game, entity.SideSecond, entity.Move{Row: 2, Col: 2})

		// Then: the game ends in a draw
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.WinnerDraw, game.Winner)
		assert.Empty(t, game.WinningLine)
	})

	t.Run("Error after the game is finished", func(t *testing.T) {
		game := entity.NewGame("123", entity.OpponentRandom, entity.SideFirst)
		game.Status = entity.StatusFinished

		err := MakeTurn(game, entity.SideFirst, entity.Move{Row: 1, Col: 1})

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Error on a corrupted stored board", func(t *testing.T) {
		game := entity.NewGame("123", entity.OpponentRandom, entity.SideFirst)
		game.Board = "10"

		err := MakeTurn(game, entity.SideFirst, entity.Move{Row: 1, Col: 1})

		require.ErrorIs(t, err, apperror.ErrMalformedBoard)
	})
}
