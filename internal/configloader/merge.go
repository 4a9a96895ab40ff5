package configloader

import "github.com/yaklabco/lcsstr/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// Scalar values in override replace base only when non-zero, so a layer can
// set a field but never reset it to its zero value.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Mode != "" {
		result.Mode = override.Mode
	}
	if override.MinLength != 0 {
		result.MinLength = override.MinLength
	}
	if override.MaxLength != 0 {
		result.MaxLength = override.MaxLength
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	// ShowSource can only be switched on.
	if override.ShowSource {
		result.ShowSource = true
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
