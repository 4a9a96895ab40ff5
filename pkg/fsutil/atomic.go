package fsutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the default permission mode for newly created files.
const DefaultFileMode os.FileMode = 0o644

// WriteOptions controls WriteAtomic.
type WriteOptions struct {
	// Mode is the permission mode of the written file. Zero means
	// DefaultFileMode.
	Mode os.FileMode

	// NoClobber makes the write fail with ErrExists when path already exists.
	// The existence check and the publish step are a single hard link, so a
	// file created concurrently is never overwritten.
	NoClobber bool
}

// WriteAtomic writes content to path through a temp file in the same
// directory, so readers see either the old file or the complete new one.
//
// On error the temp file is removed and the original file is untouched.
func WriteAtomic(ctx context.Context, path string, content []byte, opts WriteOptions) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("write atomic: %w", ctx.Err())
	default:
	}

	mode := opts.Mode
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", categorize(path, err))
	}
	tmpPath := tmp.Name()

	published := false
	defer func() {
		_ = tmp.Close()
		if !published || opts.NoClobber {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if opts.NoClobber {
		if err := os.Link(tmpPath, path); err != nil {
			if errors.Is(err, os.ErrExist) {
				return fmt.Errorf("%w: %s", ErrExists, path)
			}
			return fmt.Errorf("link temp file: %w", err)
		}
	} else if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	published = true
	return nil
}

// WriteAtomicIfChanged writes content to path only if it differs from what is
// already there. It reports whether the file was written.
func WriteAtomicIfChanged(ctx context.Context, path string, content []byte, mode os.FileMode) (bool, error) {
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("write atomic: %w", ctx.Err())
	default:
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, content):
		return false, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("read existing: %w", categorize(path, err))
	}

	if err := WriteAtomic(ctx, path, content, WriteOptions{Mode: mode}); err != nil {
		return false, err
	}
	return true, nil
}
