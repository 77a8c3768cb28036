package apperror

import (
	"errors"
	"fmt"
)

// error kinds.
var (
	ErrIllegalMove          = errors.New("illegal move")
	ErrInvalidBoardEncoding = errors.New("invalid board encoding")
)

// causes of ErrIllegalMove.
var (
	ErrGameOver     = errors.New("game is already finished")
	ErrWrongTurn    = errors.New("it's not your turn")
	ErrOutOfBounds  = errors.New("cell is out of the board")
	ErrCellOccupied = errors.New("cell is already occupied")
)

// causes of ErrInvalidBoardEncoding.
var (
	ErrWrongLength   = errors.New("board must be 9 cells")
	ErrUnknownSymbol = errors.New("unknown cell symbol")
)

// IllegalMove - wraps cause into an ErrIllegalMove, both are matched by errors.Is.
func IllegalMove(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrIllegalMove, cause, fmt.Sprintf(format, args...))
}

// WrongLength - reports a board encoding that does not hold exactly 9 cells.
func WrongLength(length int) error {
	return fmt.Errorf("%w: %w: got %d", ErrInvalidBoardEncoding, ErrWrongLength, length)
}

// UnknownSymbolError is returned when a board encoding holds a character
// other than 'X', 'O' or ' '.
type UnknownSymbolError struct {
	Symbol   rune
	Position int
}

func (that *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%s: %s: %q at position %d",
		ErrInvalidBoardEncoding, ErrUnknownSymbol, that.Symbol, that.Position)
}

func (that *UnknownSymbolError) Unwrap() []error {
	return []error{ErrInvalidBoardEncoding, ErrUnknownSymbol}
}
