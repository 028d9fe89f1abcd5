package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"tally/internal/source"
	"tally/internal/stats"
	"tally/pkg/models"
	"tally/pkg/utils"
)

// Loader handles configuration loading and validation
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadConfig loads configuration from file or returns default config when
// no file is given. A file that cannot be read is an error.
func (l *Loader) LoadConfig(configFile string) (*models.Config, error) {
	config := l.getDefaultConfig()

	if configFile == "" {
		return config, nil
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// getDefaultConfig returns the default configuration
func (l *Loader) getDefaultConfig() *models.Config {
	return &models.Config{
		Selection: string(stats.ModePriority),
		Lines: models.LinesConfig{
			TrimFinalNewline: true,
			Strict:           false,
		},
		Input: models.InputConfig{
			MaxFileSize: "256MB",
		},
		Logging: models.LoggingConfig{
			Level: "warn",
		},
	}
}

// OverrideWithFlags overrides config values with command line flags
func (l *Loader) OverrideWithFlags(config *models.Config, flags *models.CLIOptions) error {
	if flags.Union {
		config.Selection = string(stats.ModeUnion)
	}

	if flags.Posix {
		config.Lines.TrimFinalNewline = false
	}

	if flags.StrictLines {
		config.Lines.Strict = true
	}

	return nil
}

// ValidateConfig validates the configuration
func (l *Loader) ValidateConfig(config *models.Config) error {
	if _, err := stats.ParseMode(config.Selection); err != nil {
		return err
	}

	if _, err := l.maxFileSize(config); err != nil {
		return fmt.Errorf("invalid max_file_size: %w", err)
	}

	switch strings.ToLower(config.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level '%s'. Valid options: debug, info, warn, error", config.Logging.Level)
	}

	return nil
}

// LineOptions returns the line counting convention of a validated config
func (l *Loader) LineOptions(config *models.Config) stats.LineOptions {
	return stats.LineOptions{
		TrimFinalNewline: config.Lines.TrimFinalNewline,
		Strict:           config.Lines.Strict,
	}
}

// SourceOptions returns the file loading limits of a validated config
func (l *Loader) SourceOptions(config *models.Config) (source.Options, error) {
	size, err := l.maxFileSize(config)
	if err != nil {
		return source.Options{}, fmt.Errorf("invalid max_file_size: %w", err)
	}
	return source.Options{MaxFileSize: size}, nil
}

func (l *Loader) maxFileSize(config *models.Config) (int64, error) {
	if config.Input.MaxFileSize == "" {
		return 0, nil
	}
	return utils.ParseSize(config.Input.MaxFileSize)
}
