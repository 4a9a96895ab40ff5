package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/lcsstr/pkg/commonsub"
	"github.com/yaklabco/lcsstr/pkg/config"
)

// envVarPrefix is the prefix for all lcsstr environment variables.
const envVarPrefix = "LCSSTR_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeInt
	envTypeUint
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"MODE":       {field: "mode", typ: envTypeString, description: "What to report: longest, random, or all"},
	"MIN_LENGTH": {field: "min_length", typ: envTypeInt, description: "Shortest common substring that counts"},
	"MAX_LENGTH": {field: "max_length", typ: envTypeInt, description: "Longest accepted input token"},
	"SEED":       {field: "seed", typ: envTypeUint, description: "Random seed (0 = new seed every run)"},
	"FORMAT":     {field: "format", typ: envTypeString, description: "Output format: text, table, or json"},
	"JOBS":       {field: "jobs", typ: envTypeInt, description: "Number of parallel batch workers (0 = auto)"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with LCSSTR_ (e.g., LCSSTR_MODE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return &ValidationError{Field: envVar, Value: value, Message: fmt.Sprintf("invalid integer %q", value)}
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeUint:
		u, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return &ValidationError{Field: envVar, Value: value, Message: fmt.Sprintf("invalid unsigned integer %q", value)}
		}
		return setUintField(cfg, mapping.field, u)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "mode":
		cfg.Mode = commonsub.Mode(value)
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "min_length":
		cfg.MinLength = value
	case "max_length":
		cfg.MaxLength = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setUintField sets an unsigned integer field on the config by field path.
func setUintField(cfg *config.Config, field string, value uint64) error {
	switch field {
	case "seed":
		cfg.Seed = value
	default:
		return fmt.Errorf("unknown unsigned field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns all supported environment variables, sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool {
		return vars[i].Name < vars[j].Name
	})
	return vars
}
