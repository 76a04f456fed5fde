package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Outcome is the state of a single game: InProgress until a line is complete or the board fills up.
type Outcome int

const (
	InProgress Outcome = iota
	FirstWon
	SecondWon
	Drawn
)

func (that Outcome) String() string {
	switch that {
	case FirstWon:
		return "first won"
	case SecondWon:
		return "second won"
	case Drawn:
		return "drawn"
	default:
		return "in progress"
	}
}

func (that Outcome) Terminal() bool {
	return that != InProgress
}

// AvailableMoves returns every empty cell in row-major order.
func AvailableMoves(board entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, entity.BoardCells)
	for i, mark := range board {
		if mark == entity.Empty {
			moves = append(moves, entity.MoveFromIndex(i))
		}
	}
	return moves
}

// ApplyMove returns a copy of board with side's mark at move. The input board is not modified.
// Turn order is not checked here.
func ApplyMove(board entity.Board, move entity.Move, side entity.Side) (entity.Board, error) {
	mark, err := board.At(move)
	if err != nil {
		return board, err
	}

	if mark != entity.Empty {
		return board, fmt.Errorf("%w: %s", apperror.ErrIllegalMove, move)
	}

	board[move.Index()] = side.Mark()

	return board, nil
}

// HasWinner reports the side owning the first complete line, scanning rows, columns, then diagonals.
// A malformed board with lines for both sides reports only the first one found.
func HasWinner(board entity.Board) (entity.Side, []entity.Move, bool) {
	for _, line := range entity.Lines {
		a, b, c := board[line[0].Index()], board[line[1].Index()], board[line[2].Index()]
		if a != entity.Empty && a == b && b == c {
			winner := entity.SideFirst
			if a == entity.Second {
				winner = entity.SideSecond
			}
			return winner, []entity.Move{line[0], line[1], line[2]}, true
		}
	}

	return 0, nil, false
}

func IsDraw(board entity.Board) bool {
	if len(AvailableMoves(board)) != 0 {
		return false
	}

	_, _, won := HasWinner(board)

	return !won
}

func DetermineOutcome(board entity.Board) Outcome {
	if winner, _, ok := HasWinner(board); ok {
		if winner == entity.SideFirst {
			return FirstWon
		}
		return SecondWon
	}

	if IsDraw(board) {
		return Drawn
	}

	return InProgress
}
