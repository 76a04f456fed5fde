// Package heuristic picks a move without search by scoring every empty cell from the
// lines that pass through it. Lines are judged independently and their weights summed,
// so forks and forced sequences beyond one ply are not detected.
package heuristic

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Weights are expressed in Self/Opponent framing and describe the two other cells of a line.
type Weights struct {
	O2 int `json:"o2"` // two self marks: completing wins
	X2 int `json:"x2"` // two opponent marks: must block
	X1 int `json:"x1"` // one opponent mark, one empty
	O1 int `json:"o1"` // one self mark, one empty
	N  int `json:"n"`  // both empty
}

var DefaultWeights = Weights{
	O2: 10000,
	X2: 1000,
	X1: 10,
	O1: 6,
	N:  4,
}

type Evaluator struct {
	weights Weights
}

func New(weights Weights) *Evaluator {
	return &Evaluator{weights: weights}
}

func Default() *Evaluator {
	return New(DefaultWeights)
}

// classify returns the weight of a line for its remaining cell given the other two marks.
// A line holding both a self and an opponent mark is dead and scores 0.
func (that *Evaluator) classify(a, b entity.Mark) int {
	var self, opponent, empty int
	for _, mark := range [2]entity.Mark{a, b} {
		switch mark {
		case entity.Self:
			self++
		case entity.Opponent:
			opponent++
		default:
			empty++
		}
	}

	switch {
	case self == 2:
		return that.weights.O2
	case opponent == 2:
		return that.weights.X2
	case opponent == 1 && empty == 1:
		return that.weights.X1
	case self == 1 && empty == 1:
		return that.weights.O1
	case empty == 2:
		return that.weights.N
	default:
		return 0
	}
}

// Scores returns the per-cell score for side to move. Occupied cells score 0.
func (that *Evaluator) Scores(board entity.Board, side entity.Side) [entity.BoardCells]int {
	relative := board.Relative(side)

	var scores [entity.BoardCells]int
	for _, line := range entity.Lines {
		for pos, move := range line {
			cell := move.Index()
			if relative[cell] != entity.Empty {
				continue
			}

			a := relative[line[(pos+1)%3].Index()]
			b := relative[line[(pos+2)%3].Index()]
			scores[cell] += that.classify(a, b)
		}
	}

	return scores
}

// SelectMove returns the empty cell with the strictly greatest score; ties go to the
// first cell in row-major order, which also covers a board where every line is dead.
func (that *Evaluator) SelectMove(board entity.Board, side entity.Side) (entity.Move, error) {
	scores := that.Scores(board, side)

	best := -1
	for i, mark := range board {
		if mark != entity.Empty {
			continue
		}
		if best < 0 || scores[i] > scores[best] {
			best = i
		}
	}

	if best < 0 {
		return entity.Move{}, fmt.Errorf("%w: board %s is full", apperror.ErrNoMoveAvailable, board)
	}

	return entity.MoveFromIndex(best), nil
}
