package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	BoardSize  = 3
	BoardCells = BoardSize * BoardSize
)

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	First
	Second
)

// Self and Opponent name the marks of a board remapped with Board.Relative.
const (
	Self     = First
	Opponent = Second
)

func (that Mark) digit() byte {
	return '0' + byte(that)
}

// Side is one of the two players; the values match the +1/-1 convention.
type Side int8

const (
	SideFirst  Side = 1
	SideSecond Side = -1
)

func (that Side) Mark() Mark {
	if that == SideSecond {
		return Second
	}
	return First
}

func (that Side) Other() Side {
	return -that
}

func (that Side) Valid() bool {
	return that == SideFirst || that == SideSecond
}

func (that Side) String() string {
	switch that {
	case SideFirst:
		return "first"
	case SideSecond:
		return "second"
	default:
		return "none"
	}
}

// ParseSide accepts "first"/"second" as well as the numeric forms "1"/"-1" and "2".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "1", "x":
		return SideFirst, nil
	case "second", "-1", "2", "o":
		return SideSecond, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownSide, s)
	}
}

// Move is a 0-indexed (row, column) coordinate.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func MoveFromIndex(i int) Move {
	return Move{Row: i / BoardSize, Col: i % BoardSize}
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Index is the row-major position of the move, meaningful only when InRange.
func (that Move) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Line is one of the eight winning triples.
type Line [3]Move

// Lines lists rows, then columns, then the main and anti diagonal.
var Lines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a row-major 3x3 grid. It is a value type: copies never share cells.
type Board [BoardCells]Mark

func EmptyBoard() Board {
	return Board{}
}

func (that Board) At(m Move) (Mark, error) {
	if !m.InRange() {
		return Empty, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, m)
	}
	return that[m.Index()], nil
}

// Relative remaps the board so that side's marks read as Self.
// Applying it twice with the same side returns the original board.
func (that Board) Relative(side Side) Board {
	if side != SideSecond {
		return that
	}

	out := that
	for i, mark := range out {
		switch mark {
		case First:
			out[i] = Second
		case Second:
			out[i] = First
		}
	}
	return out
}

func (that Board) String() string {
	return Encode(that)
}

// Encode renders the board as 9 digits: '0' empty, '1' first side, '2' second side.
func Encode(board Board) string {
	buf := make([]byte, BoardCells)
	for i, mark := range board {
		buf[i] = mark.digit()
	}
	return string(buf)
}

// Decode parses the 9-digit form produced by Encode.
func Decode(s string) (Board, error) {
	var board Board

	if len(s) != BoardCells {
		return board, fmt.Errorf("%w: length %d, want %d", apperror.ErrMalformedBoard, len(s), BoardCells)
	}

	for i := 0; i < BoardCells; i++ {
		switch s[i] {
		case '0':
			board[i] = Empty
		case '1':
			board[i] = First
		case '2':
			board[i] = Second
		default:
			return Board{}, fmt.Errorf("%w: invalid character %q at %d", apperror.ErrMalformedBoard, s[i], i)
		}
	}

	return board, nil
}

// MustDecode is Decode for literals known to be valid.
func MustDecode(s string) Board {
	board, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return board
}

func (that Side) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Side) UnmarshalText(text []byte) error {
	if string(text) == "none" || len(text) == 0 {
		*that = 0
		return nil
	}

	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*that = side
	return nil
}
