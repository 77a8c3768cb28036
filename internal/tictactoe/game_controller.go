package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// GameEngine is the rules engine contract every implementation satisfies.
type GameEngine interface {
	// Reset clears the board, gives the turn to X and marks the game in progress.
	Reset()
	// ValidateMove checks the move without applying it.
	ValidateMove(move entity.Move) error
	// PlayTurn applies a valid move, on error the engine is left untouched.
	PlayTurn(move entity.Move) error
	// State returns a snapshot that later moves do not affect.
	State() entity.BoardView
	// Turn returns the player expected to move next.
	Turn() entity.Player
	IsTerminal() bool
	Winner() (entity.Player, bool)
}

// GameController is the array-backed engine.
type GameController struct {
	lines  [entity.LineCount]entity.Line
	board  entity.Board
	turn   entity.Player
	result entity.Result
}

// NewGameController - returns an engine ready for the first move.
func NewGameController() *GameController {
	that := &GameController{
		lines: entity.WinningLines(),
	}
	that.Reset()

	return that
}

func (that *GameController) Reset() {
	that.board = entity.Board{}
	that.turn = entity.PlayerX
	that.result = entity.InProgress()
}

// ValidateMove - checks, in order: game not over, player's turn, position on the board, cell empty.
func (that *GameController) ValidateMove(move entity.Move) error {
	if that.result.IsTerminal() {
		return apperror.IllegalMove(apperror.ErrGameOver, "game is %s", that.result)
	}

	if move.Player != that.turn {
		return apperror.IllegalMove(apperror.ErrWrongTurn, "%s tried to move, expected %s", move.Player, that.turn)
	}

	cell, ok := that.board.Cell(move.X, move.Y)
	if !ok {
		return apperror.IllegalMove(apperror.ErrOutOfBounds, "cell (%d, %d)", move.X, move.Y)
	}

	if cell != entity.CellEmpty {
		return apperror.IllegalMove(apperror.ErrCellOccupied, "cell (%d, %d) holds %s", move.X, move.Y, cell)
	}

	return nil
}

func (that *GameController) PlayTurn(move entity.Move) error {
	if err := that.ValidateMove(move); err != nil {
		return err
	}

	that.board.Place(move.X, move.Y, move.Player.Cell())
	that.updateGameStatus(move.Player)

	return nil
}

// updateGameStatus - settles the result after a move by player.
func (that *GameController) updateGameStatus(player entity.Player) {
	switch {
	case that.hasWin():
		that.result = entity.Won(player)
	case that.board.IsFull():
		that.result = entity.Draw()
	default:
		that.turn = player.Other()
	}
}

// hasWin - only the last mover can complete a line, so the first match is theirs.
func (that *GameController) hasWin() bool {
	for _, line := range that.lines {
		if that.board.ThreeInRow(line[0], line[1], line[2]) {
			return true
		}
	}

	return false
}

func (that *GameController) State() entity.BoardView {
	return entity.NewBoardView(that.board)
}

func (that *GameController) Turn() entity.Player {
	return that.turn
}

func (that *GameController) IsTerminal() bool {
	return that.result.IsTerminal()
}

func (that *GameController) Winner() (entity.Player, bool) {
	return that.result.Winner()
}

// Result - returns the current game result.
func (that *GameController) Result() entity.Result {
	return that.result
}
