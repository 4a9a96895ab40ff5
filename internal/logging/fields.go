// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError    = "error"
	FieldPath     = "path"
	FieldInput    = "input"
	FieldOutput   = "output"
	FieldFormat   = "format"
	FieldDuration = "duration"

	// Analysis fields.
	FieldMode           = "mode"
	FieldMinLength      = "min_length"
	FieldMaxLength      = "max_length"
	FieldSeed           = "seed"
	FieldLen1           = "len1"
	FieldLen2           = "len2"
	FieldSequenceLength = "sequence_length"
	FieldNodes          = "nodes"
	FieldLength         = "length"
	FieldCount          = "count"
	FieldSumLength      = "sum_length"

	// Batch fields.
	FieldRunID  = "run_id"
	FieldJobs   = "jobs"
	FieldPairs  = "pairs"
	FieldFailed = "failed"
	FieldIndex  = "index"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
