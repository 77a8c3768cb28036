package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/conformance"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunGame - plays a console game on the engine named in the config.
func RunGame(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signalContext(log)
	defer cancel()

	engine, err := tictactoe.NewDefaultRegistry().Create(conf.Engine)
	if err != nil {
		return fmt.Errorf("could not create engine: %w", err)
	}

	log.Info("Starting console game", "engine", conf.Engine)

	// reading the input blocks, so the game runs aside and a signal can end it
	gameErrCh := make(chan error, 1)
	go func() {
		gameErrCh <- console.New(logger, engine, in, out).Run(ctx)
	}()

	select {
	case err = <-gameErrCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("console game error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// RunConformance - checks every bundled engine and records the ones that pass.
func RunConformance(logger *slog.Logger, conf *config.Config) (*entity.Summary, error) {
	log := logger.With("component", "app")

	ctx, cancel := signalContext(log)
	defer cancel()

	savers := []conformance.SummarySaver{
		conformance.NewFileSink(conf.Conformance.SummaryPath),
	}

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		savers = append(savers, repository.NewSummaryRepository(redisStorage))
	}

	runner := conformance.NewRunner(logger, tictactoe.NewDefaultRegistry(), savers...)

	summary, err := runner.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("conformance run failed: %w", err)
	}

	return summary, nil
}

func signalContext(log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()

	return ctx, cancel
}
