package conformance

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var errRedisDown = errors.New("redis down")

// anyTurnEngine lets whoever submits a move play it as the current player.
type anyTurnEngine struct {
	*tictactoe.GameController
}

func (that *anyTurnEngine) PlayTurn(move entity.Move) error {
	move.Player = that.Turn()
	return that.GameController.PlayTurn(move)
}

// endlessEngine never reports the end of a game.
type endlessEngine struct {
	*tictactoe.GameController
}

func (that *endlessEngine) IsTerminal() bool { return false }

// panickingEngine blows up on every move.
type panickingEngine struct {
	*tictactoe.GameController
}

func (that *panickingEngine) PlayTurn(entity.Move) error { panic("engine exploded") }

type mockSummarySaver struct {
	mock.Mock
}

func (that *mockSummarySaver) Save(ctx context.Context, summary *entity.Summary) error {
	args := that.Called(ctx, summary)
	return args.Error(0)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newCandidates() *tictactoe.Registry {
	registry := tictactoe.NewDefaultRegistry()
	registry.MustRegister("any-turn", func() tictactoe.GameEngine {
		return &anyTurnEngine{tictactoe.NewGameController()}
	})
	registry.MustRegister("endless", func() tictactoe.GameEngine {
		return &endlessEngine{tictactoe.NewGameController()}
	})
	registry.MustRegister("panicking", func() tictactoe.GameEngine {
		return &panickingEngine{tictactoe.NewGameController()}
	})

	return registry
}

func TestRunner_Check(t *testing.T) {
	t.Run("Bundled engines hold every property", func(t *testing.T) {
		runner := NewRunner(newLogger(), tictactoe.NewDefaultRegistry())

		for _, name := range []string{tictactoe.EngineClassic, tictactoe.EnginePacked} {
			report, err := runner.Check(name)

			require.NoError(t, err)
			assert.True(t, report.Passed(), "%s failed: %+v", name, report.Failures)
		}
	})

	t.Run("Engine ignoring turns fails only the turn property", func(t *testing.T) {
		runner := NewRunner(newLogger(), newCandidates())

		report, err := runner.Check("any-turn")

		require.NoError(t, err)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, "wrong turn rejected", report.Failures[0].Property)
		assert.NotEmpty(t, report.Failures[0].Messages)
	})

	t.Run("Engine never ending fails win and draw", func(t *testing.T) {
		runner := NewRunner(newLogger(), newCandidates())

		report, err := runner.Check("endless")

		require.NoError(t, err)

		failed := make([]string, 0, len(report.Failures))
		for _, failure := range report.Failures {
			failed = append(failed, failure.Property)
		}
		assert.Equal(t, []string{"win detection", "draw detection"}, failed)
	})

	t.Run("Panics are reported as failures", func(t *testing.T) {
		runner := NewRunner(newLogger(), newCandidates())

		report, err := runner.Check("panicking")

		require.NoError(t, err)
		assert.False(t, report.Passed())
		assert.Contains(t, report.Failures[0].Messages, "panic: engine exploded")
	})

	t.Run("Unknown engine", func(t *testing.T) {
		runner := NewRunner(newLogger(), newCandidates())

		_, err := runner.Check("missing")

		require.ErrorIs(t, err, tictactoe.ErrUnknownEngine)
	})
}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Records passing engines in every saver", func(t *testing.T) {
		// Given: the bundled engines plus broken candidates, a file sink and a mocked saver
		path := filepath.Join(t.TempDir(), "tests_summary.txt")
		saver := &mockSummarySaver{}
		saver.On("Save", mock.Anything, mock.AnythingOfType("*entity.Summary")).Return(nil).Once()

		runner := NewRunner(newLogger(), newCandidates(), NewFileSink(path), saver)

		// When: running the suite
		summary, err := runner.Run(ctx)

		// Then: only the correct engines pass
		require.NoError(t, err)
		assert.NotEmpty(t, summary.RunID)
		assert.Equal(t, []string{"classic", "packed", "any-turn", "endless", "panicking"}, summary.Engines)
		assert.Equal(t, []string{"classic", "packed"}, summary.Passed)
		assert.False(t, summary.CreatedAt.IsZero())

		// Then: the summary file lists them one per line
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "classic\npacked\n", string(content))

		saver.AssertExpectations(t)
	})

	t.Run("Summary file is truncated between runs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tests_summary.txt")
		require.NoError(t, os.WriteFile(path, []byte("stale\nentries\nfrom\nlast\nrun\n"), 0o600))

		runner := NewRunner(newLogger(), tictactoe.NewDefaultRegistry(), NewFileSink(path))

		_, err := runner.Run(ctx)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "classic\npacked\n", string(content))
	})

	t.Run("Saver failure is returned with the summary", func(t *testing.T) {
		saver := &mockSummarySaver{}
		saver.On("Save", mock.Anything, mock.Anything).Return(errRedisDown).Once()

		runner := NewRunner(newLogger(), tictactoe.NewDefaultRegistry(), saver)

		summary, err := runner.Run(ctx)

		require.ErrorIs(t, err, errRedisDown)
		require.NotNil(t, summary)
		assert.Equal(t, []string{"classic", "packed"}, summary.Passed)
	})

	t.Run("Empty registry", func(t *testing.T) {
		runner := NewRunner(newLogger(), tictactoe.NewRegistry())

		summary, err := runner.Run(ctx)

		require.NoError(t, err)
		assert.Empty(t, summary.Engines)
		assert.Empty(t, summary.Passed)
	})

	t.Run("Canceled context stops the run", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		saver := &mockSummarySaver{}
		runner := NewRunner(newLogger(), tictactoe.NewDefaultRegistry(), saver)

		_, err := runner.Run(canceled)

		require.ErrorIs(t, err, context.Canceled)
		saver.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestNewFileSink(t *testing.T) {
	assert.Equal(t, DefaultSummaryPath, NewFileSink("").Path())
	assert.Equal(t, "out.txt", NewFileSink("out.txt").Path())
}
