package cmd

import (
	"fmt"

	"tally/internal/config"
	"tally/internal/orchestration"
	"tally/internal/source"
	"tally/pkg/logger"
	"tally/pkg/models"

	"github.com/spf13/cobra"
)

// Version information
var Version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cliOptions := &models.CLIOptions{}

	cmd := &cobra.Command{
		Use:     "tally [file]",
		Short:   "Print line, character, byte and word counts of a file",
		Version: Version,
		Long: `Tally reads a text file and prints its statistics followed by the path.

Fields are printed in the order lines, characters, bytes, words. A field whose
value is zero is left out entirely.

Without flags all four statistics are printed. When several flags are given,
only the first one in the order -c, -l, -m, -w is honored unless --union is set.

Line counting drops the final newline before end-of-file, so a file with N line
feeds reports N-1 lines. Use --posix to report N instead.

Examples:
  # All statistics
  tally notes.txt

  # Bytes only
  tally -c notes.txt

  # Bytes and words together
  tally --union -c -w notes.txt

  # POSIX line count with settings from a config file
  tally -l --posix --config .tally.yml notes.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTally(cmd, args, cliOptions)
		},
	}

	cmd.Flags().BoolVarP(&cliOptions.Bytes, "bytes", "c", false, "Print the byte count")
	cmd.Flags().BoolVarP(&cliOptions.Lines, "lines", "l", false, "Print the line count")
	cmd.Flags().BoolVarP(&cliOptions.Words, "words", "w", false, "Print the word count")
	cmd.Flags().BoolVarP(&cliOptions.Chars, "chars", "m", false, "Print the character (multibyte) count")
	cmd.Flags().BoolVar(&cliOptions.Union, "union", false, "Print every requested statistic instead of the first one")
	cmd.Flags().BoolVar(&cliOptions.Posix, "posix", false, "Count every line feed as a line")
	cmd.Flags().BoolVar(&cliOptions.StrictLines, "strict-lines", false, "Fail instead of reporting zero lines when the file has no line feed")
	cmd.Flags().StringVarP(&cliOptions.ConfigFile, "config", "C", "", "Configuration file path")
	cmd.Flags().BoolVarP(&cliOptions.Verbose, "verbose", "v", false, "Verbose output")
	cmd.Flags().BoolVarP(&cliOptions.Quiet, "quiet", "q", false, "Suppress everything but errors")

	return cmd
}

// runTally executes the root command
func runTally(cmd *cobra.Command, args []string, cliOptions *models.CLIOptions) error {
	if len(args) == 0 {
		return source.ErrMissingPath
	}
	path := args[0]

	configLoader := config.NewLoader()
	cfg, err := configLoader.LoadConfig(cliOptions.ConfigFile)
	if err != nil {
		logger.Logger.WithError(err).Debug("Failed to load configuration")
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := configLoader.OverrideWithFlags(cfg, cliOptions); err != nil {
		logger.Logger.WithError(err).Debug("Failed to process configuration")
		return fmt.Errorf("failed to process configuration: %w", err)
	}

	if err := configLoader.ValidateConfig(cfg); err != nil {
		logger.Logger.WithError(err).Debug("Configuration validation failed")
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	configureLogging(cfg, cliOptions)
	logger.Logger.WithField("path", path).Debug("Configuration loaded")

	orchestrator := orchestration.NewOrchestrator(cfg, cliOptions)
	return orchestrator.ProcessFile(cmd.Context(), path, cmd.OutOrStdout())
}

// configureLogging applies --quiet or --verbose, falling back to the configured level
func configureLogging(cfg *models.Config, cliOptions *models.CLIOptions) {
	switch {
	case cliOptions.Quiet:
		logger.SetQuiet()
	case cliOptions.Verbose:
		logger.SetVerbose()
	default:
		logger.SetLevel(cfg.Logging.Level)
	}
}
