package main

import (
	"fmt"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/logging"
)

// main - checks every bundled engine against the rules and writes the passing ones to the summary file.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	conf := config.MustLoad(filepath.Join(baseDir, "./config.yml"))
	logger := logging.New(conf.LogLevel, os.Stdout)

	summary, err := app.RunConformance(logger, conf)
	if err != nil {
		panic(fmt.Errorf("conformance run failed: %w", err))
	}

	if len(summary.Passed) < len(summary.Engines) {
		os.Exit(1)
	}
}
