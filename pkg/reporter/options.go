package reporter

import (
	"io"
	"os"
	"time"

	"github.com/yaklabco/lcsstr/pkg/commonsub"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for summaries in text mode
	// (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSource precedes each pair's text block with its input location.
	ShowSource bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses minified JSON.
	Compact bool

	// Mode, MinLength and Seed describe the run in JSON output.
	Mode      commonsub.Mode
	MinLength int
	Seed      uint64

	// RunID identifies the run in JSON output. A random UUID is used if empty.
	RunID string

	// Elapsed is shown in the table summary when non-zero.
	Elapsed time.Duration
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		Mode:        commonsub.ModeLongest,
		MinLength:   1,
	}
}
