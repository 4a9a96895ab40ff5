package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/lcsstr/pkg/commonsub"
	"github.com/yaklabco/lcsstr/pkg/config"
)

func isolatedOptions(workDir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         workDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.Mode != commonsub.ModeLongest {
		t.Errorf("expected mode %q, got %q", commonsub.ModeLongest, result.Config.Mode)
	}
	if result.Config.MaxLength != config.DefaultMaxLength {
		t.Errorf("expected max_length %d, got %d", config.DefaultMaxLength, result.Config.MaxLength)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".lcsstr.yml"), `
mode: all
min_length: 3
jobs: 2
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Mode != commonsub.ModeAll {
		t.Errorf("expected mode all, got %q", result.Config.Mode)
	}
	if result.Config.MinLength != 3 {
		t.Errorf("expected min_length 3, got %d", result.Config.MinLength)
	}
	if result.Config.Jobs != 2 {
		t.Errorf("expected jobs 2, got %d", result.Config.Jobs)
	}
	if result.Config.Format != config.FormatText {
		t.Errorf("unset format should keep default, got %q", result.Config.Format)
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ProjectConfigFoundUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(root, ".lcsstr.yml"), "format: json\n")

	result, err := Load(context.Background(), isolatedOptions(nested))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format json, got %q", result.Config.Format)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	repo := filepath.Join(root, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(root, ".lcsstr.yml"), "mode: random\n")

	path, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if path != "" {
		t.Errorf("search should stop at the VCS root, found %s", path)
	}
}

func TestLoad_ExplicitConfigOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".lcsstr.yml"), "mode: all\nseed: 5\n")

	customPath := filepath.Join(tmpDir, "custom.yml")
	writeFile(t, customPath, "mode: random\n")

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = customPath

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Mode != commonsub.ModeRandom {
		t.Errorf("expected mode random, got %q", result.Config.Mode)
	}
	if result.Config.Seed != 5 {
		t.Errorf("project seed should survive, got %d", result.Config.Seed)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != customPath {
		t.Errorf("expected project then explicit, got %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverridesAll(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".lcsstr.yml"), "mode: all\nformat: table\n")

	opts := isolatedOptions(tmpDir)
	opts.CLIConfig = &config.Config{Format: config.FormatJSON, MinLength: 7}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format json, got %q", result.Config.Format)
	}
	if result.Config.MinLength != 7 {
		t.Errorf("expected min_length 7, got %d", result.Config.MinLength)
	}
	if result.Config.Mode != commonsub.ModeAll {
		t.Errorf("file mode should survive, got %q", result.Config.Mode)
	}
}

func TestLoad_InvalidFileValue(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".lcsstr.yml")
	writeFile(t, configPath, "mode: sometimes\n")

	_, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err == nil {
		t.Fatal("expected an error for an invalid mode")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if verr.Field != "mode" {
		t.Errorf("expected field mode, got %q", verr.Field)
	}
	if verr.FilePath != configPath {
		t.Errorf("expected file path %s, got %q", configPath, verr.FilePath)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".lcsstr.yml"), "mode: [\n")

	_, err := Load(context.Background(), isolatedOptions(tmpDir))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if !strings.Contains(verr.Error(), "parse YAML") {
		t.Errorf("unexpected message: %v", verr)
	}
}

func TestLoad_MinAboveMaxWarns(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".lcsstr.yml"), "min_length: 50\nmax_length: 10\n")

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "exceeds max_length") {
		t.Errorf("expected one min/max warning, got %v", result.Warnings)
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, isolatedOptions(t.TempDir())); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantField string
	}{
		{"defaults are valid", func(*config.Config) {}, ""},
		{"bad mode", func(c *config.Config) { c.Mode = "sum" }, "mode"},
		{"empty mode", func(c *config.Config) { c.Mode = "" }, "mode"},
		{"zero min length", func(c *config.Config) { c.MinLength = 0 }, "min_length"},
		{"negative max length", func(c *config.Config) { c.MaxLength = -1 }, "max_length"},
		{"bad format", func(c *config.Config) { c.Format = "sarif" }, "format"},
		{"negative jobs", func(c *config.Config) { c.Jobs = -2 }, "jobs"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			testCase.mutate(cfg)

			result := Validate(cfg)
			if testCase.wantField == "" {
				if !result.Valid() {
					t.Fatalf("expected valid config, got %v", result.AllMessages())
				}
				return
			}

			if result.Valid() {
				t.Fatalf("expected an error on %s", testCase.wantField)
			}
			if got := result.Errors[0].Field; got != testCase.wantField {
				t.Errorf("expected field %q, got %q (%v)", testCase.wantField, got, result.AllMessages())
			}
		})
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	merged := MergeAll(
		config.NewConfig(),
		&config.Config{Mode: commonsub.ModeRandom, Seed: 9},
		&config.Config{Seed: 11, ShowSource: true},
	)

	if merged.Mode != commonsub.ModeRandom {
		t.Errorf("expected mode random, got %q", merged.Mode)
	}
	if merged.Seed != 11 {
		t.Errorf("expected seed 11, got %d", merged.Seed)
	}
	if !merged.ShowSource {
		t.Error("expected ShowSource to be set")
	}
	if merged.MaxLength != config.DefaultMaxLength {
		t.Errorf("expected default max_length, got %d", merged.MaxLength)
	}
	if MergeAll() != nil {
		t.Error("MergeAll() with no configs should be nil")
	}
}
