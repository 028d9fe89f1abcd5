package models

// Config represents the complete configuration for tally
type Config struct {
	Selection string        `yaml:"selection"`
	Lines     LinesConfig   `yaml:"lines"`
	Input     InputConfig   `yaml:"input"`
	Logging   LoggingConfig `yaml:"logging"`
}

// LinesConfig contains line counting settings
type LinesConfig struct {
	TrimFinalNewline bool `yaml:"trim_final_newline"`
	Strict           bool `yaml:"strict"`
}

// InputConfig contains file loading limits
type InputConfig struct {
	MaxFileSize string `yaml:"max_file_size"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CLIOptions contains command-line options
type CLIOptions struct {
	Bytes       bool
	Lines       bool
	Words       bool
	Chars       bool
	Union       bool
	Posix       bool
	StrictLines bool
	ConfigFile  string
	Verbose     bool
	Quiet       bool
}
