package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Grid is a read-only board projection.
type Grid interface {
	At(x, y int) rune
	String() string
}

// BoardView is a snapshot of an engine board. It holds its own copy of the
// cells, later moves on the engine do not show up in it.
type BoardView struct {
	cells Board
}

// NewBoardView - copies board into a new view.
func NewBoardView(board Board) BoardView {
	return BoardView{cells: board}
}

// At - returns 'X', 'O' or ' ' for the cell at (x, y). It panics when the
// position is off the board.
func (that BoardView) At(x, y int) rune {
	return at(&that.cells, x, y)
}

// Cells - returns a copy of the snapshot cells.
func (that BoardView) Cells() Board {
	return that.cells
}

func (that BoardView) String() string {
	return render(&that.cells)
}

// BoardState is an immutable board that is not tied to an engine, used to
// describe expected boards.
type BoardState struct {
	cells Board
}

// FromChars - builds a BoardState from exactly 9 characters, each one of 'X', 'O' or ' '.
func FromChars(chars []rune) (BoardState, error) {
	if len(chars) != CellCount {
		return BoardState{}, apperror.WrongLength(len(chars))
	}

	var cells Board
	for i, ch := range chars {
		switch ch {
		case 'X':
			cells[i] = CellX
		case 'O':
			cells[i] = CellO
		case ' ':
			cells[i] = CellEmpty
		default:
			return BoardState{}, &apperror.UnknownSymbolError{Symbol: ch, Position: i}
		}
	}

	return BoardState{cells: cells}, nil
}

// ParseBoardState - same as FromChars for the characters of s.
func ParseBoardState(s string) (BoardState, error) {
	return FromChars([]rune(s))
}

// MustParseBoardState - like ParseBoardState but panics on error. Intended for fixtures.
func MustParseBoardState(s string) BoardState {
	state, err := ParseBoardState(s)
	if err != nil {
		panic(fmt.Errorf("bad board fixture %q: %w", s, err))
	}

	return state
}

func (that BoardState) At(x, y int) rune {
	return at(&that.cells, x, y)
}

func (that BoardState) Cells() Board {
	return that.cells
}

func (that BoardState) String() string {
	return render(&that.cells)
}

// SameCells reports whether both grids show the same mark on every position.
func SameCells(a, b Grid) bool {
	for i := range CellCount {
		x, y := Coords(i)
		if a.At(x, y) != b.At(x, y) {
			return false
		}
	}

	return true
}

func at(cells *Board, x, y int) rune {
	cell, ok := cells.Cell(x, y)
	if !ok {
		panic(fmt.Sprintf("position (%d, %d) is out of the board", x, y))
	}

	return cell.Symbol()
}

// render - all cells in index order, e.g. "[X, O,  ,  , X,  , O,  ,  ]".
func render(cells *Board) string {
	symbols := make([]string, 0, CellCount)
	for _, cell := range cells {
		symbols = append(symbols, cell.String())
	}

	return "[" + strings.Join(symbols, ", ") + "]"
}
