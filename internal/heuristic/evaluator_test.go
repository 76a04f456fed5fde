package heuristic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestEvaluator_SelectMove(t *testing.T) {
	evaluator := Default()

	t.Run("Empty board takes the center", func(t *testing.T) {
		// Given: an empty board with the first side to move
		board := entity.EmptyBoard()

		// When: the evaluator picks a move
		move, err := evaluator.SelectMove(board, entity.SideFirst)

		// Then: the center, which lies on four lines, wins
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, move)
		assert.Equal(t, [entity.BoardCells]int{12, 8, 12, 8, 16, 8, 12, 8, 12}, evaluator.Scores(board, entity.SideFirst))
	})

	t.Run("Completes its own line", func(t *testing.T) {
		board := entity.MustDecode("110020000")

		move, err := evaluator.SelectMove(board, entity.SideFirst)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
		assert.Equal(t, 10014, evaluator.Scores(board, entity.SideFirst)[2])
	})

	t.Run("Prefers the center over an edge when nothing is forced", func(t *testing.T) {
		board := entity.MustDecode("120000000")

		move, err := evaluator.SelectMove(board, entity.SideFirst)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, move)
		assert.Equal(t, [entity.BoardCells]int{0, 0, 8, 10, 24, 8, 14, 14, 14}, evaluator.Scores(board, entity.SideFirst))
	})

	t.Run("Blocks the opponent's open line", func(t *testing.T) {
		// Given: the second side threatens the top row
		board := entity.MustDecode("220010000")

		// When: the first side moves
		move, err := evaluator.SelectMove(board, entity.SideFirst)

		// Then: it blocks at the end of the row
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Winning beats blocking", func(t *testing.T) {
		// Given: both sides have two in a row, first to move
		board := entity.MustDecode("220110000")

		move, err := evaluator.SelectMove(board, entity.SideFirst)

		// Then: completing the middle row outranks blocking the top one
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
	})

	t.Run("Scores from the second side's point of view", func(t *testing.T) {
		// Given: the same threat as above, but now it is the second side's own row
		board := entity.MustDecode("220010000")

		move, err := evaluator.SelectMove(board, entity.SideSecond)

		// Then: the second side completes it
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
		assert.Equal(t, 10014, evaluator.Scores(board, entity.SideSecond)[2])
	})

	t.Run("Ties go to the first cell in row-major order", func(t *testing.T) {
		// Given: all four corners score the same against a center opponent
		board := entity.MustDecode("000010000")
		scores := evaluator.Scores(board, entity.SideSecond)
		require.Equal(t, scores[0], scores[8])

		move, err := evaluator.SelectMove(board, entity.SideSecond)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})

	t.Run("All-zero scores pick the first empty cell", func(t *testing.T) {
		// Given: a single empty cell whose three lines are all dead
		board := entity.MustDecode("121122210")
		require.Equal(t, [entity.BoardCells]int{}, evaluator.Scores(board, entity.SideFirst))

		move, err := evaluator.SelectMove(board, entity.SideFirst)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
	})

	t.Run("All-zero weights skip occupied cells", func(t *testing.T) {
		flat := New(Weights{})

		move, err := flat.SelectMove(entity.MustDecode("120000000"), entity.SideFirst)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Full board has no move", func(t *testing.T) {
		_, err := evaluator.SelectMove(entity.MustDecode("121211212"), entity.SideFirst)

		require.ErrorIs(t, err, apperror.ErrNoMoveAvailable)
	})
}

func TestEvaluator_Properties(t *testing.T) {
	evaluator := Default()
	rnd := rand.New(rand.NewSource(42))

	for game := 0; game < 200; game++ {
		board := entity.EmptyBoard()
		side := entity.SideFirst

		for ply := 0; ply < entity.BoardCells; ply++ {
			if !hasEmpty(board) || hasLine(board) {
				break
			}

			first, err := evaluator.SelectMove(board, side)
			require.NoError(t, err)

			// Then: the choice is deterministic and always an empty cell
			second, err := evaluator.SelectMove(board, side)
			require.NoError(t, err)
			require.Equal(t, first, second)
			require.Equal(t, entity.Empty, board[first.Index()], board.String())

			// Then: occupied cells never score
			scores := evaluator.Scores(board, side)
			for i, mark := range board {
				if mark != entity.Empty {
					require.Zero(t, scores[i])
				}
			}

			// Then: an immediate win is never missed
			if win, ok := winningCell(board, side); ok {
				require.True(t, completes(board, first, side), "board %s side %s missed %s", board, side, win)
			}

			// play randomly to reach varied positions
			empty := emptyCells(board)
			board[empty[rnd.Intn(len(empty))]] = side.Mark()
			side = side.Other()
		}
	}
}

func emptyCells(board entity.Board) []int {
	var cells []int
	for i, mark := range board {
		if mark == entity.Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

func hasEmpty(board entity.Board) bool {
	return len(emptyCells(board)) > 0
}

func hasLine(board entity.Board) bool {
	for _, line := range entity.Lines {
		a := board[line[0].Index()]
		if a != entity.Empty && a == board[line[1].Index()] && a == board[line[2].Index()] {
			return true
		}
	}
	return false
}

func completes(board entity.Board, move entity.Move, side entity.Side) bool {
	board[move.Index()] = side.Mark()
	return hasLine(board)
}

func winningCell(board entity.Board, side entity.Side) (entity.Move, bool) {
	for _, cell := range emptyCells(board) {
		move := entity.MoveFromIndex(cell)
		if completes(board, move, side) {
			return move, true
		}
	}
	return entity.Move{}, false
}
