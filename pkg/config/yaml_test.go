package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lcsstr/pkg/commonsub"
	"github.com/yaklabco/lcsstr/pkg/config"
)

func TestNewConfig(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, commonsub.ModeLongest, cfg.Mode)
	assert.Equal(t, config.DefaultMinLength, cfg.MinLength)
	assert.Equal(t, config.DefaultMaxLength, cfg.MaxLength)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Zero(t, cfg.Jobs)
}

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		clone := c.Clone()
		assert.Nil(t, clone)
	})

	t.Run("preserves all fields", func(t *testing.T) {
		original := &config.Config{
			Mode:       commonsub.ModeAll,
			MinLength:  3,
			MaxLength:  100,
			Seed:       42,
			Format:     config.FormatJSON,
			Jobs:       4,
			Color:      "never",
			ShowSource: true,
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.Equal(t, *original, *clone)

		clone.MinLength = 9
		assert.Equal(t, 3, original.MinLength)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("basic config serializes", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Mode = commonsub.ModeRandom
		cfg.Seed = 7
		cfg.ShowSource = true

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "mode: random")
		assert.Contains(t, string(data), "seed: 7")
		assert.Contains(t, string(data), "max_length: 31000")
		assert.NotContains(t, string(data), "show_source", "CLI-only fields are not persisted")
	})

	t.Run("header is separated by a blank line", func(t *testing.T) {
		data, err := config.NewConfig().ToYAMLWithHeader("# header")
		require.NoError(t, err)
		assert.Regexp(t, `^# header\n\nmode: longest\n`, string(data))
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		yaml := []byte(`
mode: all
min_length: 4
seed: 99
format: table
`)
		cfg, err := config.FromYAML(yaml)
		require.NoError(t, err)
		assert.Equal(t, commonsub.ModeAll, cfg.Mode)
		assert.Equal(t, 4, cfg.MinLength)
		assert.Equal(t, uint64(99), cfg.Seed)
		assert.Equal(t, config.FormatTable, cfg.Format)
		assert.Zero(t, cfg.MaxLength, "absent fields stay unset")
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := config.FromYAML([]byte("mode: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("round trips", func(t *testing.T) {
		original := config.NewConfig()
		original.Jobs = 3

		data, err := original.ToYAML()
		require.NoError(t, err)

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, original.Mode, parsed.Mode)
		assert.Equal(t, original.Jobs, parsed.Jobs)
		assert.Equal(t, original.MaxLength, parsed.MaxLength)
	})
}
