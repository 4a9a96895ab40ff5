package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lcsstr/internal/logging"
	"github.com/yaklabco/lcsstr/pkg/config"
	"github.com/yaklabco/lcsstr/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new lcsstr configuration file",
		Long: `Create a new .lcsstr.yml configuration file in the current directory.

Examples:
  lcsstr init                      Create a commented .lcsstr.yml
  lcsstr init --full               Create a config with every setting enabled
  lcsstr init --format json        Create .lcsstr.json instead
  lcsstr init --output custom.yml  Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate a template with every setting enabled")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .lcsstr.yml or .lcsstr.json)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()
	ctx := commandContext(cmd)

	if flags.format != "yaml" && flags.format != "json" {
		return fmt.Errorf("%w: invalid format %q: must be yaml or json", ErrUsage, flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		if flags.format == "json" {
			outputPath = ".lcsstr.json"
		} else {
			outputPath = ".lcsstr.yml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if flags.force {
		changed, err := fsutil.WriteAtomicIfChanged(ctx, absPath, content, fsutil.DefaultFileMode)
		if err != nil {
			return fmt.Errorf("write file: %w", err)
		}
		if !changed {
			logger.Info("configuration file already up to date", logging.FieldPath, outputPath)
			return nil
		}
	} else {
		err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.WriteOptions{
			Mode:      fsutil.DefaultFileMode,
			NoClobber: true,
		})
		if errors.Is(err, fsutil.ErrExists) {
			return fmt.Errorf("file %q already exists; use --force to overwrite: %w", outputPath, err)
		}
		if err != nil {
			return fmt.Errorf("write file: %w", err)
		}
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")

	return nil
}
