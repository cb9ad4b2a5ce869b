// Package cli provides the command-line interface for colorsheet.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorsheet/internal/config"
	"github.com/jmylchreest/colorsheet/internal/preview"
	"github.com/jmylchreest/colorsheet/internal/version"
)

// app carries flag values and the resolved configuration shared by all commands.
type app struct {
	configFile string
	verbose    bool
	quiet      bool
	format     *enumValue
	preview    *enumValue

	config config.Config
	logger hclog.Logger
}

// NewRootCmd builds the colorsheet command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		format:  newEnumValue("format", config.FormatText, config.FormatText, config.FormatJSON),
		preview: newEnumValue("mode", config.PreviewAuto, config.PreviewAuto, config.PreviewAlways, config.PreviewNever),
		logger:  hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "colorsheet",
		Short: "Convert colours and check WCAG contrast",
		Long: `colorsheet converts colours between hex, RGB(A) and HSL, computes relative
luminance, classifies WCAG contrast ratios and shifts hues.

Colours may be given as hex (#rgb, #rgba, #rrggbb, #rrggbbaa, the '#' is
optional) or as SVG colour names such as "steelblue".`,
		Version:           version.Get().Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress log output")
	rootCmd.PersistentFlags().VarP(a.format, "format", "f", "output format (text, json)")
	rootCmd.PersistentFlags().Var(a.preview, "preview", "colour swatches (auto, always, never)")
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: $"+config.EnvConfigFile+")")

	rootCmd.SetVersionTemplate(version.Get().String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(a),
		newHexCmd(a),
		newRGBCmd(a),
		newHSLCmd(a),
		newLuminanceCmd(a),
		newContrastCmd(a),
		newWCAGCmd(a),
		newShiftCmd(a),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves configuration (defaults, file, environment, flags) and the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = newLogger(a.verbose && !a.quiet, cmd.ErrOrStderr())

	cfg, err := config.NewBuilder().
		WithFile(a.configFile).
		WithEnv().
		Build()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = a.format.String()
	}
	if cmd.Flags().Changed("preview") {
		cfg.Preview = a.preview.String()
	}
	a.config = cfg

	a.logger.Debug("configuration resolved",
		"format", cfg.Format,
		"preview", cfg.Preview,
		"preview_width", cfg.PreviewWidth,
		"config_file", a.configFile,
	)
	return nil
}

// newLogger returns a debug logger writing to out when verbose, a silent one otherwise.
func newLogger(verbose bool, out io.Writer) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "colorsheet",
			Output: out,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colorsheet",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// showPreview reports whether swatches should accompany text output.
func (a *app) showPreview(cmd *cobra.Command) bool {
	return a.config.Format == config.FormatText && preview.Enabled(a.config.Preview, cmd.OutOrStdout())
}

// render writes v as JSON or the table as text, depending on the configured format.
func (a *app) render(cmd *cobra.Command, v any, table *Table) error {
	out := cmd.OutOrStdout()
	if a.config.Format == config.FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}
	_, err := io.WriteString(out, table.Render())
	return err
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if a.config.Format == config.FormatJSON {
				return a.render(cmd, info, nil)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return err
		},
	}
}
