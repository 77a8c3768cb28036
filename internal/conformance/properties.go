package conformance

import (
	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Property is a single rule every engine must satisfy. Check reports
// violations through t and gets a freshly built engine.
type Property struct {
	Name  string
	Check func(t assert.TestingT, engine tictactoe.GameEngine)
}

// Properties - returns the fixed suite in the order it is run.
func Properties() []Property {
	return []Property{
		{Name: "index is a bijection", Check: checkIndexBijection},
		{Name: "reset clears the game", Check: checkReset},
		{Name: "legal move", Check: checkLegalMove},
		{Name: "win detection", Check: checkWin},
		{Name: "draw detection", Check: checkDraw},
		{Name: "illegal moves do not mutate", Check: checkIllegalMoves},
		{Name: "wrong turn rejected", Check: checkWrongTurn},
		{Name: "board encoding errors", Check: checkBoardEncoding},
		{Name: "snapshot immutability", Check: checkSnapshot},
	}
}

func move(x, y int, player entity.Player) entity.Move {
	return entity.NewMove(x, y, player)
}

// playAll - stops at the first rejected move and reports it.
func playAll(t assert.TestingT, engine tictactoe.GameEngine, moves ...entity.Move) bool {
	for _, m := range moves {
		if !assert.NoError(t, engine.PlayTurn(m), "move %s", m) {
			return false
		}
	}

	return true
}

func checkIndexBijection(t assert.TestingT, _ tictactoe.GameEngine) {
	seen := make(map[int]bool, entity.CellCount)

	for y := range entity.Size {
		for x := range entity.Size {
			index := entity.Index(x, y)
			assert.True(t, index >= 0 && index < entity.CellCount, "index %d of (%d, %d)", index, x, y)
			assert.False(t, seen[index], "index %d produced twice", index)
			seen[index] = true

			assert.Equal(t, x, index%entity.Size)
			assert.Equal(t, y, index/entity.Size)
		}
	}
}

func checkReset(t assert.TestingT, engine tictactoe.GameEngine) {
	engine.Reset()

	assert.True(t, entity.SameCells(entity.MustParseBoardState("         "), engine.State()),
		"board after reset: %s", engine.State())
	assert.Equal(t, entity.PlayerX, engine.Turn())
	assert.False(t, engine.IsTerminal())

	_, ok := engine.Winner()
	assert.False(t, ok, "winner after reset")
}

func checkLegalMove(t assert.TestingT, engine tictactoe.GameEngine) {
	engine.Reset()

	if !playAll(t, engine, move(0, 0, entity.PlayerX)) {
		return
	}

	assert.Equal(t, "[X,  ,  ,  ,  ,  ,  ,  ,  ]", engine.State().String())
	assert.Equal(t, entity.PlayerO, engine.Turn())
	assert.False(t, engine.IsTerminal())
}

func checkWin(t assert.TestingT, engine tictactoe.GameEngine) {
	engine.Reset()

	ok := playAll(t, engine,
		move(0, 0, entity.PlayerX),
		move(1, 1, entity.PlayerO),
		move(1, 0, entity.PlayerX),
		move(2, 2, entity.PlayerO),
		move(2, 0, entity.PlayerX),
	)
	if !ok {
		return
	}

	assert.True(t, engine.IsTerminal())

	winner, won := engine.Winner()
	assert.True(t, won, "no winner after top row")
	assert.Equal(t, entity.PlayerX, winner)

	before := engine.State()
	for _, m := range []entity.Move{move(0, 2, entity.PlayerO), move(0, 2, entity.PlayerX)} {
		assert.ErrorIs(t, engine.PlayTurn(m), apperror.ErrGameOver, "move %s", m)
		assert.Equal(t, before.String(), engine.State().String())
	}
}

func checkDraw(t assert.TestingT, engine tictactoe.GameEngine) {
	engine.Reset()

	ok := playAll(t, engine,
		move(0, 0, entity.PlayerX),
		move(1, 0, entity.PlayerO),
		move(2, 0, entity.PlayerX),
		move(1, 1, entity.PlayerO),
		move(0, 1, entity.PlayerX),
		move(2, 1, entity.PlayerO),
		move(1, 2, entity.PlayerX),
		move(0, 2, entity.PlayerO),
		move(2, 2, entity.PlayerX),
	)
	if !ok {
		return
	}

	assert.True(t, entity.SameCells(entity.MustParseBoardState("XOXXOOOXX"), engine.State()),
		"board after draw: %s", engine.State())
	assert.True(t, engine.IsTerminal())

	_, won := engine.Winner()
	assert.False(t, won, "winner after draw")
}

func checkIllegalMoves(t assert.TestingT, engine tictactoe.GameEngine) {
	engine.Reset()

	before, turn := engine.State(), engine.Turn()
	assert.ErrorIs(t, engine.PlayTurn(move(3, 0, entity.PlayerX)), apperror.ErrOutOfBounds)
	assert.Equal(t, before.String(), engine.State().String())
	assert.Equal(t, turn, engine.Turn())

	if !playAll(t, engine, move(1, 1, entity.PlayerX)) {
		return
	}

	before, turn = engine.State(), engine.Turn()
	assert.ErrorIs(t, engine.PlayTurn(move(1, 1, entity.PlayerO)), apperror.ErrCellOccupied)
	assert.Equal(t, before.String(), engine.State().String())
	assert.Equal(t, turn, engine.Turn())
}

func checkWrongTurn(t assert.TestingT, engine tictactoe.GameEngine) {
	engine.Reset()

	assert.ErrorIs(t, engine.PlayTurn(move(1, 1, entity.PlayerO)), apperror.ErrWrongTurn)
	assert.Equal(t, ' ', engine.State().At(1, 1))
	assert.Equal(t, entity.PlayerX, engine.Turn())
}

func checkBoardEncoding(t assert.TestingT, _ tictactoe.GameEngine) {
	_, err := entity.FromChars([]rune("XOXOXOXO"))
	assert.ErrorIs(t, err, apperror.ErrWrongLength)

	_, err = entity.ParseBoardState("XOXOXOXOZ")
	if assert.ErrorIs(t, err, apperror.ErrUnknownSymbol) {
		assert.Contains(t, err.Error(), "'Z'")
	}
}

func checkSnapshot(t assert.TestingT, engine tictactoe.GameEngine) {
	engine.Reset()

	if !playAll(t, engine, move(0, 0, entity.PlayerX)) {
		return
	}

	snapshot := engine.State()

	if !playAll(t, engine, move(1, 1, entity.PlayerO)) {
		return
	}

	assert.Equal(t, ' ', snapshot.At(1, 1), "snapshot changed after a later move")
	assert.Equal(t, 'X', snapshot.At(0, 0))
}
