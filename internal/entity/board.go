package entity

import "fmt"

const (
	// Size is the width and height of the board.
	Size = 3
	// CellCount is the number of positions on the board.
	CellCount = Size * Size
	// LineCount is the number of winning lines: 3 rows, 3 columns, 2 diagonals.
	LineCount = 2*Size + 2
)

// Index - maps coordinates to the position in the board array, row-major.
func Index(x, y int) int {
	return y*Size + x
}

// Coords - inverse of Index.
func Coords(index int) (int, int) {
	return index % Size, index / Size
}

// InBounds reports whether (x, y) is a position on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// Line is a triple of board indices that wins the game when uniformly occupied.
type Line [3]int

// WinningLines - builds the rows, the columns and the two diagonals.
func WinningLines() [LineCount]Line {
	var lines [LineCount]Line

	n := 0
	for y := range Size {
		lines[n] = Line{Index(0, y), Index(1, y), Index(2, y)}
		n++
	}

	for x := range Size {
		lines[n] = Line{Index(x, 0), Index(x, 1), Index(x, 2)}
		n++
	}

	lines[n] = Line{Index(0, 0), Index(1, 1), Index(2, 2)}
	lines[n+1] = Line{Index(2, 0), Index(1, 1), Index(0, 2)}

	return lines
}

// Board is the 3x3 grid stored row-major. Being an array, assigning it copies it.
type Board [CellCount]Cell

// Cell - returns the cell at (x, y), ok is false when the position is off the board.
func (that *Board) Cell(x, y int) (Cell, bool) {
	if !InBounds(x, y) {
		return CellEmpty, false
	}

	return that[Index(x, y)], true
}

// Place - writes the mark at (x, y). It does not check whether the cell is empty.
func (that *Board) Place(x, y int, cell Cell) {
	if !InBounds(x, y) {
		panic(fmt.Sprintf("position (%d, %d) is out of the board", x, y))
	}

	that[Index(x, y)] = cell
}

// IsFull reports whether no cell is empty.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == CellEmpty {
			return false
		}
	}

	return true
}

// ThreeInRow reports whether the three cells hold the same non-empty mark.
func (that *Board) ThreeInRow(i, j, k int) bool {
	a := that[i]
	return a != CellEmpty && a == that[j] && a == that[k]
}
