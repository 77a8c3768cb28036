package conformance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// SummarySaver - a destination for the run summary.
type SummarySaver interface {
	Save(ctx context.Context, summary *entity.Summary) error
}

// Failure - a property an engine did not hold, with the reported violations.
type Failure struct {
	Property string
	Messages []string
}

// EngineReport - outcome of the whole suite for one engine.
type EngineReport struct {
	Name     string
	Failures []Failure
}

func (that *EngineReport) Passed() bool {
	return len(that.Failures) == 0
}

// Runner checks every registered engine against the property suite and
// records the names of the engines that hold all of them.
type Runner struct {
	logger     *slog.Logger
	registry   *tictactoe.Registry
	properties []Property
	savers     []SummarySaver
	now        func() time.Time
}

func NewRunner(logger *slog.Logger, registry *tictactoe.Registry, savers ...SummarySaver) *Runner {
	return &Runner{
		logger:     logger.With("component", "conformance"),
		registry:   registry,
		properties: Properties(),
		savers:     savers,
		now:        time.Now,
	}
}

// Run - checks the engines in registration order and saves the summary to every saver.
func (that *Runner) Run(ctx context.Context) (*entity.Summary, error) {
	log := that.logger.With("method", "Run")

	names := that.registry.Names()
	summary := &entity.Summary{
		RunID:     uuid.NewString(),
		Engines:   names,
		Passed:    []string{},
		CreatedAt: that.now().UTC(),
	}

	log.Info("found implementations of GameEngine", "count", len(names), "run_id", summary.RunID)

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("conformance run interrupted: %w", err)
		}

		report, err := that.Check(name)
		if err != nil {
			return nil, fmt.Errorf("failed to check engine %s: %w", name, err)
		}

		progress := fmt.Sprintf("[%d/%d]", i+1, len(names))
		if report.Passed() {
			summary.Passed = append(summary.Passed, name)
			log.Info("PASSED", "progress", progress, "engine", name)
			continue
		}

		for _, failure := range report.Failures {
			log.Debug("property violated", "engine", name, "property", failure.Property, "messages", failure.Messages)
		}
		log.Info("FAILED", "progress", progress, "engine", name, "failures", len(report.Failures))
	}

	for _, saver := range that.savers {
		if err := saver.Save(ctx, summary); err != nil {
			return summary, fmt.Errorf("failed to save summary: %w", err)
		}
	}

	log.Info("conformance run done", "passed", summary.Passed)

	return summary, nil
}

// Check - runs the whole suite against the named engine, a fresh instance per property.
func (that *Runner) Check(name string) (*EngineReport, error) {
	factory, err := that.registry.Factory(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get engine factory: %w", err)
	}

	report := &EngineReport{Name: name}
	for _, property := range that.properties {
		if messages := checkProperty(property, factory); len(messages) > 0 {
			report.Failures = append(report.Failures, Failure{Property: property.Name, Messages: messages})
		}
	}

	return report, nil
}

// checkProperty - a panicking engine fails the property instead of the run.
func checkProperty(property Property, factory tictactoe.Factory) (messages []string) {
	recorder := &collector{}

	defer func() {
		if recovered := recover(); recovered != nil {
			messages = append(recorder.messages, fmt.Sprintf("panic: %v", recovered))
		}
	}()

	property.Check(recorder, factory())

	return recorder.messages
}

// collector satisfies assert.TestingT and keeps the reported violations.
type collector struct {
	messages []string
}

func (that *collector) Errorf(format string, args ...any) {
	that.messages = append(that.messages, fmt.Sprintf(format, args...))
}
