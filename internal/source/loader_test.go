package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestFile creates a file with content in a temporary directory
func writeTestFile(t *testing.T, name string, content []byte) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("should load text content", func(t *testing.T) {
		path := writeTestFile(t, "hello.txt", []byte("hello world\n"))

		content, err := Load(ctx, path, Options{})
		require.NoError(t, err)
		assert.Equal(t, "hello world\n", content)
	})

	t.Run("should load empty file", func(t *testing.T) {
		path := writeTestFile(t, "empty.txt", nil)

		content, err := Load(ctx, path, Options{})
		require.NoError(t, err)
		assert.Empty(t, content)
	})

	t.Run("should load multibyte content", func(t *testing.T) {
		path := writeTestFile(t, "accent.txt", []byte("héllo\n"))

		content, err := Load(ctx, path, Options{})
		require.NoError(t, err)
		assert.Equal(t, "héllo\n", content)
	})

	t.Run("should error on missing path", func(t *testing.T) {
		_, err := Load(ctx, "", Options{})
		assert.ErrorIs(t, err, ErrMissingPath)
	})

	t.Run("should error on nonexistent file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.txt")

		_, err := Load(ctx, path, Options{})
		assert.ErrorIs(t, err, ErrFileNotFound)

		var ioErr *IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, path, ioErr.Path)
		assert.Equal(t, "stat", ioErr.Op)
	})

	t.Run("should error on directory", func(t *testing.T) {
		_, err := Load(ctx, t.TempDir(), Options{})

		var ioErr *IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Contains(t, err.Error(), "path is a directory")
	})

	t.Run("should error on invalid utf-8", func(t *testing.T) {
		path := writeTestFile(t, "latin1.txt", []byte{'c', 'a', 'f', 0xE9, '\n'})

		_, err := Load(ctx, path, Options{})

		var ioErr *IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "decode", ioErr.Op)
	})

	t.Run("should error when file exceeds size limit", func(t *testing.T) {
		path := writeTestFile(t, "big.txt", []byte("0123456789"))

		_, err := Load(ctx, path, Options{MaxFileSize: 5})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds limit")
	})

	t.Run("should accept file at size limit", func(t *testing.T) {
		path := writeTestFile(t, "exact.txt", []byte("01234"))

		content, err := Load(ctx, path, Options{MaxFileSize: 5})
		require.NoError(t, err)
		assert.Equal(t, "01234", content)
	})

	t.Run("should stop on cancelled context", func(t *testing.T) {
		path := writeTestFile(t, "hello.txt", []byte("hello"))
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := Load(cancelled, path, Options{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIOError(t *testing.T) {
	inner := errors.New("permission denied")
	err := &IOError{Path: "a.txt", Op: "read", Err: inner}

	assert.Equal(t, "read a.txt: permission denied", err.Error())
	assert.ErrorIs(t, err, inner)
}
