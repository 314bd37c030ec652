// Package cli provides the command-line interface for Tincture.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/export"
	"github.com/jmylchreest/tincture/internal/theme"
)

var (
	// Export command flags
	exportTheme  string
	exportPreset string
	exportName   string
	exportMode   string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export a theme as a terminal configuration file",
	Long: fmt.Sprintf(`Export a theme in one of the supported terminal formats.

The theme comes from a saved theme file (--theme), a built-in preset
(--preset), or the default dark palette when neither is given.

Supported formats: %s

Examples:
  # Export the default palette for kitty
  tincture export kitty

  # Export a saved theme for wezterm as a complete config
  tincture export wezterm --theme mytheme.json --mode complete

  # Export a preset into a directory
  tincture export alacritty --preset "Tokyo Night" --output ~/.config/alacritty`,
		formatList()),
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportTheme, "theme", "t", "", "theme JSON file to export")
	exportCmd.Flags().StringVarP(&exportPreset, "preset", "p", "", "built-in preset name to export")
	exportCmd.Flags().StringVarP(&exportName, "name", "n", "", "override the theme name")
	exportCmd.Flags().StringVar(&exportMode, "mode", "", "format mode where supported (wezterm: theme-only, complete)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output directory (default: stdout)")
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, args []string) error {
	format := export.Format(args[0])
	logger := newLogger(cmd, "export")

	t, err := resolveTheme(exportTheme, exportPreset)
	if err != nil {
		return err
	}
	name := t.Name
	if exportName != "" {
		name = exportName
	}

	artifact, err := export.Export(export.Request{
		Format:  format,
		Name:    name,
		Palette: t.Colours(),
		Mode:    export.Mode(exportMode),
	})
	if err != nil {
		return fmt.Errorf("failed to export theme: %w", err)
	}

	if exportOutput == "" {
		_, err = os.Stdout.Write(artifact.Content)
		return err
	}

	if err := os.MkdirAll(exportOutput, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(exportOutput, artifact.Filename)
	if err := os.WriteFile(path, artifact.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	logger.Info("theme exported", "format", string(format), "path", path)
	return nil
}

// resolveTheme loads the theme named by the flags, defaulting to a fresh
// theme with the default dark palette.
func resolveTheme(themePath, presetName string) (*theme.Theme, error) {
	if themePath != "" && presetName != "" {
		return nil, fmt.Errorf("--theme and --preset are mutually exclusive")
	}

	t := theme.New()
	switch {
	case themePath != "":
		if err := t.Load(themePath); err != nil {
			return nil, err
		}
	case presetName != "":
		p, ok := theme.Preset(presetName)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %q (run 'tincture presets' for the list)", presetName)
		}
		t.Name = presetName
		t.SetAll(p)
	}
	return t, nil
}

func formatList() string {
	formats := export.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
