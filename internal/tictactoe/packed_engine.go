package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	cellBits = 2
	cellMask = 0b11
)

// PackedEngine keeps the board in a single word, 2 bits per cell in index
// order, plus one occupancy bitmask per player tested against line masks.
type PackedEngine struct {
	lineMasks [entity.LineCount]uint16
	cells     uint32
	occupied  [2]uint16
	turn      entity.Player
	result    entity.Result
}

func NewPackedEngine() *PackedEngine {
	that := &PackedEngine{}

	for i, line := range entity.WinningLines() {
		that.lineMasks[i] = 1<<line[0] | 1<<line[1] | 1<<line[2]
	}

	that.Reset()

	return that
}

func (that *PackedEngine) Reset() {
	that.cells = 0
	that.occupied = [2]uint16{}
	that.turn = entity.PlayerX
	that.result = entity.InProgress()
}

func (that *PackedEngine) ValidateMove(move entity.Move) error {
	if that.result.IsTerminal() {
		return apperror.IllegalMove(apperror.ErrGameOver, "game is %s", that.result)
	}

	if move.Player != that.turn {
		return apperror.IllegalMove(apperror.ErrWrongTurn, "%s tried to move, expected %s", move.Player, that.turn)
	}

	if !entity.InBounds(move.X, move.Y) {
		return apperror.IllegalMove(apperror.ErrOutOfBounds, "cell (%d, %d)", move.X, move.Y)
	}

	if cell := that.cell(entity.Index(move.X, move.Y)); cell != entity.CellEmpty {
		return apperror.IllegalMove(apperror.ErrCellOccupied, "cell (%d, %d) holds %s", move.X, move.Y, cell)
	}

	return nil
}

func (that *PackedEngine) PlayTurn(move entity.Move) error {
	if err := that.ValidateMove(move); err != nil {
		return err
	}

	index := entity.Index(move.X, move.Y)
	that.cells |= uint32(move.Player.Cell()) << (index * cellBits)

	mine := &that.occupied[move.Player-entity.PlayerX]
	*mine |= 1 << index

	switch {
	case that.completesLine(*mine):
		that.result = entity.Won(move.Player)
	case that.isBoardFull():
		that.result = entity.Draw()
	default:
		that.turn = move.Player.Other()
	}

	return nil
}

func (that *PackedEngine) completesLine(mask uint16) bool {
	for _, line := range that.lineMasks {
		if mask&line == line {
			return true
		}
	}

	return false
}

func (that *PackedEngine) isBoardFull() bool {
	return that.occupied[0]|that.occupied[1] == 1<<entity.CellCount-1
}

func (that *PackedEngine) cell(index int) entity.Cell {
	return entity.Cell(that.cells >> (index * cellBits) & cellMask)
}

func (that *PackedEngine) State() entity.BoardView {
	var board entity.Board
	for i := range board {
		board[i] = that.cell(i)
	}

	return entity.NewBoardView(board)
}

func (that *PackedEngine) Turn() entity.Player {
	return that.turn
}

func (that *PackedEngine) IsTerminal() bool {
	return that.result.IsTerminal()
}

func (that *PackedEngine) Winner() (entity.Player, bool) {
	return that.result.Winner()
}
