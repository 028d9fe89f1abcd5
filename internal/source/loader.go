package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"tally/pkg/logger"
	"tally/pkg/utils"
)

var (
	// ErrMissingPath is returned when no file path was supplied
	ErrMissingPath = errors.New("path not specified")
	// ErrFileNotFound is returned when the path does not exist
	ErrFileNotFound = errors.New("file not found in path")
)

// IOError reports a failure to obtain the content of a file
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Options limits what Load accepts
type Options struct {
	// MaxFileSize is the largest file in bytes Load reads; 0 means unlimited
	MaxFileSize int64
}

// Load reads the whole file at path and returns it as text
func Load(ctx context.Context, path string, opts Options) (string, error) {
	if path == "" {
		return "", ErrMissingPath
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &IOError{Path: path, Op: "stat", Err: ErrFileNotFound}
		}
		return "", &IOError{Path: path, Op: "stat", Err: err}
	}

	if info.IsDir() {
		return "", &IOError{Path: path, Op: "open", Err: errors.New("path is a directory")}
	}

	if opts.MaxFileSize > 0 && info.Size() > opts.MaxFileSize {
		return "", &IOError{
			Path: path,
			Op:   "open",
			Err: fmt.Errorf("file size %s exceeds limit of %s",
				utils.FormatBytes(info.Size()), utils.FormatBytes(opts.MaxFileSize)),
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Path: path, Op: "read", Err: err}
	}

	if !utf8.Valid(content) {
		return "", &IOError{Path: path, Op: "decode", Err: errors.New("content is not valid UTF-8")}
	}

	logger.Logger.WithFields(map[string]interface{}{
		"path": path,
		"size": utils.FormatBytes(int64(len(content))),
	}).Debug("Loaded file content")

	return string(content), nil
}
