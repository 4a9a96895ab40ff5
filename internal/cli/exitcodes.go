package cli

import (
	"errors"

	"github.com/yaklabco/lcsstr/internal/configloader"
	"github.com/yaklabco/lcsstr/pkg/fsutil"
	"github.com/yaklabco/lcsstr/pkg/suffixtree"
)

// Exit codes for lcsstr, following sysexits.h where one applies.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates an unclassified failure.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates unusable input data, such as an over-length
	// string or a batch with malformed pairs.
	ExitDataError = 65

	// ExitInternalError indicates a broken suffix tree invariant.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74

	// ExitConfigError indicates configuration errors.
	ExitConfigError = 78
)

var (
	// ErrUsage marks errors caused by bad flags or arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrInputTooLong is returned when a string read from stdin exceeds the
	// configured maximum length.
	ErrInputTooLong = errors.New("input exceeds maximum length")

	// ErrPairsFailed is returned when a batch completed but some pairs could
	// not be analysed. The failures are already part of the report.
	ErrPairsFailed = errors.New("some pairs could not be analysed")
)

// ExitCodeForError maps an error returned by a command to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError

	switch {
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrInputTooLong), errors.Is(err, ErrPairsFailed):
		return ExitDataError
	case errors.Is(err, suffixtree.ErrInvariant):
		return ExitInternalError
	case errors.As(err, &validationErr):
		return ExitConfigError
	case fsutil.IsIOError(err):
		return ExitIOError
	default:
		return ExitFailure
	}
}
