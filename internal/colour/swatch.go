package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal swatches.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// Swatch returns a solid colour block rendered with a truecolor background
// escape. Width defaults to 8 when non-positive.
func Swatch(hex string, width int) string {
	if width <= 0 {
		width = swatchWidth
	}
	rgb := HexToRGB(hex)
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// SwatchLine formats a labelled swatch row for palette listings.
func SwatchLine(role Role, hex string) string {
	return fmt.Sprintf("%s  %-15s %s", Swatch(hex, swatchWidth), string(role), hex)
}
