// Package runner analyses batches of string pairs concurrently.
package runner

import (
	"io"

	"github.com/yaklabco/lcsstr/pkg/config"
	"github.com/yaklabco/lcsstr/pkg/fsutil"
)

// Options controls a batch run.
type Options struct {
	// Inputs are the files to read pairs from, in order. fsutil.StdinName
	// selects Stdin. Empty means stdin only.
	Inputs []string

	// Stdin is read for fsutil.StdinName.
	Stdin io.Reader

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.GOMAXPROCS).
	Jobs int

	// Config is the resolved configuration for this run. Mode, MinLength,
	// MaxLength and Seed are used.
	Config *config.Config
}

// effectiveInputs returns the inputs to read, defaulting to stdin if empty.
func (o Options) effectiveInputs() []string {
	if len(o.Inputs) == 0 {
		return []string{fsutil.StdinName}
	}
	return o.Inputs
}
