// Package config defines core configuration types for lcsstr.
// These types are pure data structures; loading and layering live in
// internal/configloader.
package config

import "github.com/yaklabco/lcsstr/pkg/commonsub"

// Default limits.
const (
	// DefaultMinLength is the shortest substring reported by default.
	DefaultMinLength = 1

	// DefaultMaxLength caps a single input token read from stdin or a batch
	// file.
	DefaultMaxLength = 31000
)

// Config is the root configuration structure for lcsstr.
type Config struct {
	// Mode selects what is reported: longest, random, or all.
	Mode commonsub.Mode `yaml:"mode" validate:"required,oneof=longest random all"`

	// MinLength is the shortest common substring that counts.
	MinLength int `yaml:"min_length" validate:"gte=1"`

	// MaxLength is the longest accepted input token.
	MaxLength int `yaml:"max_length" validate:"gte=1"`

	// Seed drives random selection. Zero draws a fresh seed per run.
	Seed uint64 `yaml:"seed"`

	// Format is the output format.
	Format OutputFormat `yaml:"format" validate:"required,oneof=text table json"`

	// Jobs is the number of batch workers. Zero means GOMAXPROCS.
	Jobs int `yaml:"jobs" validate:"gte=0"`

	// CLI-level options (not persisted to config files).

	// Color controls styled output: auto, always, or never.
	Color string `yaml:"-"`

	// ShowSource prefixes batch results with their input location.
	ShowSource bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Mode:      commonsub.ModeLongest,
		MinLength: DefaultMinLength,
		MaxLength: DefaultMaxLength,
		Seed:      0,
		Format:    FormatText,
		Jobs:      0, // 0 means use GOMAXPROCS
		Color:     "auto",
	}
}
