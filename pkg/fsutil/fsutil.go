// Package fsutil provides the file system helpers lcsstr needs: opening
// input files with categorized errors and writing files atomically.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrExists indicates a no-clobber write found the target in place.
	ErrExists = errors.New("file already exists")
)

// IsIOError reports whether err came from the file system rather than from
// the content of a file.
func IsIOError(err error) bool {
	var pathErr *os.PathError
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrIsDirectory) ||
		errors.Is(err, ErrExists) ||
		errors.As(err, &pathErr)
}

// OpenInput opens path for reading. StdinName returns stdin wrapped so that
// closing it leaves the process's stdin open.
func OpenInput(ctx context.Context, path string, stdin io.Reader) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("open input: %w", ctx.Err())
	default:
	}

	if path == StdinName {
		return io.NopCloser(stdin), nil
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, categorize(path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, categorize(path, err)
	}
	return file, nil
}

// categorize wraps err with the matching sentinel, keeping the original.
func categorize(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s: %w", path, err)
	}
}
