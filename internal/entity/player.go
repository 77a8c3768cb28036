package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Cell - the content of a single board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

// Symbol - maps the cell to the character used when rendering the board.
func (c Cell) Symbol() rune {
	switch c {
	case CellEmpty:
		return ' '
	case CellX:
		return 'X'
	case CellO:
		return 'O'
	default:
		panic(fmt.Sprintf("unknown cell %d", c))
	}
}

func (c Cell) String() string {
	return string(c.Symbol())
}

// Player - one of the two participants. The zero value is not a valid player.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

// Other - returns the opponent.
func (p Player) Other() Player {
	switch p {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		panic(fmt.Sprintf("unknown player %d", p))
	}
}

// Cell - returns the mark the player leaves on the board.
func (p Player) Cell() Cell {
	switch p {
	case PlayerX:
		return CellX
	case PlayerO:
		return CellO
	default:
		panic(fmt.Sprintf("unknown player %d", p))
	}
}

func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return fmt.Sprintf("Player(%d)", uint8(p))
	}
}

// IsValid reports whether p is PlayerX or PlayerO.
func (p Player) IsValid() bool {
	return p == PlayerX || p == PlayerO
}

func ParsePlayer(s string) (Player, error) {
	switch s {
	case "X", "x":
		return PlayerX, nil
	case "O", "o":
		return PlayerO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlayer, s)
	}
}
