// Package cli provides the command-line interface for Tincture.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/theme"
)

var presetsSwatches bool

// presetsCmd represents the presets command
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in preset themes",
	Long: `List the built-in preset themes available to export and install.

With --swatches each preset is shown with colour blocks for its base
colours. Swatches need a terminal; when stdout is not a TTY only the
names are printed.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&presetsSwatches, "swatches", false, "show colour swatches per preset")
}

// runPresets executes the presets command.
func runPresets(cmd *cobra.Command, args []string) error {
	showSwatches := presetsSwatches && term.IsTerminal(int(os.Stdout.Fd()))

	for _, name := range theme.PresetNames() {
		if !showSwatches {
			fmt.Println(name)
			continue
		}

		p, _ := theme.Preset(name)
		p = colour.ValidatePalette(p)
		fmt.Printf("%s\n", name)
		fmt.Printf("  %s %s  %s %s\n",
			colour.Swatch(p[colour.RoleBackground], 4), p[colour.RoleBackground],
			colour.Swatch(p[colour.RoleForeground], 4), p[colour.RoleForeground])
		fmt.Print("  ")
		for _, role := range []colour.Role{
			colour.RoleBlack, colour.RoleRed, colour.RoleGreen, colour.RoleYellow,
			colour.RoleBlue, colour.RoleMagenta, colour.RoleCyan, colour.RoleWhite,
		} {
			fmt.Print(colour.Swatch(p[role], 3))
		}
		fmt.Println()
	}
	return nil
}
