// Package cli provides the command-line interface for Tincture.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/install"
	"github.com/jmylchreest/tincture/internal/theme"
)

// Install command flags
var installConfig string

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install <theme.json|preset>",
	Short: "Install a theme into your wezterm config",
	Long: `Splice a theme's colours into your wezterm.lua.

The argument is a theme JSON file or a built-in preset name. The colour
block is wrapped in marker comments so reinstalling replaces the block
in place rather than appending another copy.

Examples:
  # Install a saved theme into ~/.wezterm.lua
  tincture install mytheme.json

  # Install a preset into a specific config file
  tincture install "Tokyo Night" --config ~/.config/wezterm/wezterm.lua`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installConfig, "config", "", "wezterm config file (default: ~/.wezterm.lua)")
}

// runInstall executes the install command.
func runInstall(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd, "install")

	t, err := loadThemeArg(args[0])
	if err != nil {
		return err
	}

	configPath := installConfig
	if configPath == "" {
		configPath, err = install.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	err = install.Theme(configPath, t.Colours(), t.Name)
	if errors.Is(err, install.ErrPatternNotFound) {
		table, tableErr := install.ColourBlock(t.Colours(), t.Name)
		if tableErr != nil {
			return tableErr
		}
		fmt.Printf("Could not find 'return config' in %s.\n", configPath)
		fmt.Println("Add the following to your wezterm.lua manually:")
		fmt.Printf("\n%s\n", table)
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("theme installed", "theme", t.Name, "config", configPath)
	if install.WezTermRunning() {
		fmt.Println("wezterm is running; reload its configuration to apply the theme.")
	}
	return nil
}

// loadThemeArg resolves the install argument: a preset name when one matches,
// otherwise a theme JSON file path.
func loadThemeArg(arg string) (*theme.Theme, error) {
	if p, ok := theme.Preset(arg); ok {
		t := theme.New()
		t.Name = arg
		t.SetAll(colour.ValidatePalette(p))
		return t, nil
	}

	if !strings.HasSuffix(arg, ".json") {
		return nil, fmt.Errorf("unknown preset: %q (run 'tincture presets' for the list, or pass a theme JSON file)", arg)
	}
	t := theme.New()
	if err := t.Load(arg); err != nil {
		return nil, err
	}
	return t, nil
}
