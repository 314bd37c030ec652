// Package cli provides the command-line interface for Tincture.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/image"
)

var (
	// Extract command flags
	extractColours int
	extractMethod  string
	extractSeed    int64
	extractFormat  string
	extractOutput  string
	extractTimeout time.Duration
	extractMap     bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a colour palette from an image.

The extract command analyses an image and produces a list of candidate
colours ranked by how often they appear. With --map the candidates are
mapped onto the 19 terminal colour roles and printed as a complete theme.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 16 colours (default) from an image
  tincture extract wallpaper.jpg

  # Extract 8 colours using the dominant-colour method
  tincture extract --colours 8 --method dominant wallpaper.png

  # Extract and map onto terminal roles, saved as a theme file
  tincture extract --map --output mytheme.json wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", colour.DefaultColourCount, "number of colours to extract (1-256)")
	extractCmd.Flags().StringVarP(&extractMethod, "method", "m", string(colour.MethodKMeans), "extraction method (kmeans, median_cut, dominant, simple)")
	extractCmd.Flags().Int64Var(&extractSeed, "seed", colour.DefaultSeed, "random seed for deterministic extraction")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().DurationVar(&extractTimeout, "timeout", colour.DefaultTimeout, "extraction time limit")
	extractCmd.Flags().BoolVar(&extractMap, "map", false, "map extracted colours onto terminal roles")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	logger := newLogger(cmd, "extract")

	cfg := colour.Config{
		Method:  colour.Method(extractMethod),
		Count:   extractColours,
		Seed:    extractSeed,
		Timeout: extractTimeout,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("loading image", "path", imagePath)
	img, err := image.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	colours, err := colour.ExtractColours(cmd.Context(), img, cfg)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("extraction complete", "colours", len(colours))

	output, err := formatExtraction(colours, extractFormat, extractMap)
	if err != nil {
		return err
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("palette written", "path", extractOutput)
		return nil
	}
	fmt.Print(output)
	return nil
}

// formatExtraction renders the extracted colours, optionally mapped onto
// terminal roles first.
func formatExtraction(colours []string, format string, mapped bool) (string, error) {
	if mapped {
		palette := colour.ValidatePalette(colour.MapRoles(colours))
		switch format {
		case "hex":
			var b strings.Builder
			for _, role := range colour.Roles() {
				fmt.Fprintf(&b, "%-15s %s\n", string(role), palette[role])
			}
			return b.String(), nil
		case "json":
			return marshalTheme(palette)
		default:
			return "", fmt.Errorf("unsupported format: %s (supported: hex, json)", format)
		}
	}

	switch format {
	case "hex":
		return strings.Join(colours, "\n") + "\n", nil
	case "json":
		data, err := json.MarshalIndent(map[string][]string{"colors": colours}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode colours: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, json)", format)
	}
}

// marshalTheme renders a palette in the theme-file JSON shape so the output
// can feed straight into export or install.
func marshalTheme(p colour.Palette) (string, error) {
	colors := make(map[string]string, len(p))
	for role, hex := range p {
		colors[string(role)] = hex
	}
	file := struct {
		Name        string            `json:"name"`
		Description string            `json:"description"`
		Colors      map[string]string `json:"colors"`
	}{
		Name:        "Extracted Theme",
		Description: "Theme generated from image colours",
		Colors:      colors,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode theme: %w", err)
	}
	return string(data) + "\n", nil
}
