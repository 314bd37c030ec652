// Package cli provides the command-line interface for Tincture.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tincture/internal/colour"
)

var (
	// Preview command flags
	previewTheme  string
	previewPreset string
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a theme's colours in the terminal",
	Long: `Render every colour role of a theme as a swatch row.

The theme comes from a saved theme file (--theme), a built-in preset
(--preset), or the default dark palette when neither is given.

Examples:
  # Preview the default palette
  tincture preview

  # Preview a preset
  tincture preview --preset Dracula

  # Preview a saved theme
  tincture preview --theme mytheme.json`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewTheme, "theme", "t", "", "theme JSON file to preview")
	previewCmd.Flags().StringVarP(&previewPreset, "preset", "p", "", "built-in preset name to preview")
}

// runPreview executes the preview command.
func runPreview(cmd *cobra.Command, args []string) error {
	t, err := resolveTheme(previewTheme, previewPreset)
	if err != nil {
		return err
	}
	palette := colour.ValidatePalette(t.Colours())

	fmt.Printf("%s\n\n", t.Name)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		// No TTY: plain listing without escape sequences.
		for _, role := range colour.Roles() {
			fmt.Printf("%-15s %s\n", string(role), palette[role])
		}
		return nil
	}

	for _, role := range colour.Roles() {
		fmt.Println(colour.SwatchLine(role, palette[role]))
	}
	return nil
}
