package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const header = "TicTacToe - Human vs Human. Coordinates: x=0..2 y=0..2"

var ErrBadInput = errors.New("expected two integers: x y")

// Console plays a human vs human game over a line-oriented reader and writer.
type Console struct {
	logger *slog.Logger
	engine tictactoe.GameEngine

	in  *bufio.Scanner
	out io.Writer
}

func New(logger *slog.Logger, engine tictactoe.GameEngine, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		engine: engine,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run - resets the engine and reads moves until the game ends or the input is exhausted.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.engine.Reset()
	that.println(header)

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("console stopped: %w", err)
		}

		that.printBoard(that.engine.State())

		if that.engine.IsTerminal() {
			that.printResult()
			log.Info("game finished", "board", that.engine.State().String())
			return nil
		}

		turn := that.engine.Turn()
		that.printf("Turn: %s. Enter x y: ", turn)

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}

			that.println("")
			log.Info("input closed before the game ended")
			return nil
		}

		x, y, err := parseCoords(that.in.Text())
		if err != nil {
			that.printf("Invalid move: %v\n", err)
			continue
		}

		if err = that.engine.PlayTurn(entity.NewMove(x, y, turn)); err != nil {
			log.Debug("move rejected", "player", turn.String(), "x", x, "y", y, "error", err)
			that.printf("Invalid move: %v\n", err)
		}
	}
}

func (that *Console) printResult() {
	if winner, ok := that.engine.Winner(); ok {
		that.printf("%s wins!\n", winner)
		return
	}

	that.println("Draw!")
}

func (that *Console) printBoard(grid entity.Grid) {
	for y := range entity.Size {
		if y > 0 {
			that.println("---+---+---")
		}

		that.printf(" %c | %c | %c\n", grid.At(0, y), grid.At(1, y), grid.At(2, y))
	}
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func (that *Console) println(line string) {
	_, _ = fmt.Fprintln(that.out, line)
}

// parseCoords - reads "x y" from a line.
func parseCoords(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: got %q", ErrBadInput, line)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrBadInput, err)
	}

	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrBadInput, err)
	}

	return x, y, nil
}
