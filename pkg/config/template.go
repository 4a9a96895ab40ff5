package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting uncommented. Otherwise only mode is set and
	// the rest are shown as comments.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON(NewConfig())
	}

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")

	defaults := NewConfig()
	comment := "# "
	if opts.Full {
		comment = ""
	}

	fmt.Fprintf(&buf, `# What to report: longest, random, or all
mode: %s

# Shortest common substring that counts (>= 1)
%smin_length: %d

# Longest accepted input token from stdin or batch files
%smax_length: %d

# Seed for random selection (0 = new seed every run)
%sseed: %d

# Output format: text, table, or json
%sformat: %s

# Number of parallel batch workers (0 = auto)
%sjobs: %d
`,
		defaults.Mode,
		comment, defaults.MinLength,
		comment, defaults.MaxLength,
		comment, defaults.Seed,
		comment, defaults.Format,
		comment, defaults.Jobs,
	)

	return buf.Bytes(), nil
}

// templateToJSON renders the defaults as indented JSON. Keys follow the YAML
// names so the same settings read the same in either form.
func templateToJSON(cfg *Config) ([]byte, error) {
	doc := map[string]any{
		"mode":       cfg.Mode,
		"min_length": cfg.MinLength,
		"max_length": cfg.MaxLength,
		"seed":       cfg.Seed,
		"format":     cfg.Format,
		"jobs":       cfg.Jobs,
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# lcsstr configuration
# See: https://github.com/yaklabco/lcsstr`
}
