package conformance

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const DefaultSummaryPath = "tests_summary.txt"

// FileSink writes the passing engine names to a text file, one per line.
// The file is truncated on every run.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	if path == "" {
		path = DefaultSummaryPath
	}

	return &FileSink{path: path}
}

func (that *FileSink) Save(_ context.Context, summary *entity.Summary) error {
	var content strings.Builder
	for _, name := range summary.Passed {
		content.WriteString(name)
		content.WriteString("\n")
	}

	if err := os.WriteFile(that.path, []byte(content.String()), 0o644); err != nil { //nolint: gosec // summary is not secret
		return fmt.Errorf("can't write summary file %s: %w", that.path, err)
	}

	return nil
}

func (that *FileSink) Path() string {
	return that.path
}
