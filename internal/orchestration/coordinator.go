package orchestration

import (
	"context"
	"fmt"
	"io"

	"tally/internal/config"
	"tally/internal/source"
	"tally/internal/stats"
	"tally/pkg/logger"
	"tally/pkg/models"
)

// Orchestrator runs the load, count and display steps for one file
type Orchestrator struct {
	config     *models.Config
	cliOptions *models.CLIOptions
}

// NewOrchestrator creates a new orchestrator instance
func NewOrchestrator(config *models.Config, cliOptions *models.CLIOptions) *Orchestrator {
	return &Orchestrator{
		config:     config,
		cliOptions: cliOptions,
	}
}

// ProcessFile counts the statistics of the file at path and writes the
// result line to w. Nothing is written unless every step succeeds.
func (o *Orchestrator) ProcessFile(ctx context.Context, path string, w io.Writer) error {
	loader := config.NewLoader()

	sourceOptions, err := loader.SourceOptions(o.config)
	if err != nil {
		return err
	}

	mode, err := stats.ParseMode(o.config.Selection)
	if err != nil {
		return err
	}

	content, err := source.Load(ctx, path, sourceOptions)
	if err != nil {
		logger.Logger.WithError(err).WithField("path", path).Debug("Failed to load file")
		return fmt.Errorf("failed to load file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	selection := stats.Resolve(o.requestedFlags(), mode)
	logger.Logger.WithFields(map[string]interface{}{
		"path":      path,
		"selection": selection.String(),
		"mode":      mode,
	}).Debug("Computing statistics")

	fileStats := stats.New(path, content)
	if err := fileStats.Compute(selection, loader.LineOptions(o.config)); err != nil {
		logger.Logger.WithError(err).WithField("path", path).Debug("Failed to compute statistics")
		return fmt.Errorf("failed to compute statistics: %w", err)
	}

	logger.Logger.WithFields(map[string]interface{}{
		"bytes": fileStats.Bytes,
		"lines": fileStats.Lines,
		"words": fileStats.Words,
		"chars": fileStats.Chars,
	}).Debug("Statistics computed")

	if err := fileStats.Display(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (o *Orchestrator) requestedFlags() stats.Flags {
	return stats.Flags{
		Bytes: o.cliOptions.Bytes,
		Lines: o.cliOptions.Lines,
		Words: o.cliOptions.Words,
		Chars: o.cliOptions.Chars,
	}
}
