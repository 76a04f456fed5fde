// Package policy holds externally supplied move sources. A Proposer is not trusted to
// respect legality: callers validate every proposal against the available moves.
package policy

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

type Proposer interface {
	ProposeMove(board entity.Board, side entity.Side) (entity.Move, error)
}

// ProposerFunc adapts a plain function to Proposer.
type ProposerFunc func(board entity.Board, side entity.Side) (entity.Move, error)

func (that ProposerFunc) ProposeMove(board entity.Board, side entity.Side) (entity.Move, error) {
	return that(board, side)
}
