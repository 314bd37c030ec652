package export

import (
	"bytes"
	"fmt"

	"howett.net/plist"

	"github.com/jmylchreest/tincture/internal/colour"
)

// itermColour is one colour entry in an .itermcolors plist. iTerm2 stores
// channels as floats in [0,1].
type itermColour struct {
	Red        float64 `plist:"Red Component"`
	Green      float64 `plist:"Green Component"`
	Blue       float64 `plist:"Blue Component"`
	Alpha      float64 `plist:"Alpha Component"`
	ColorSpace string  `plist:"Color Space"`
}

func newITermColour(hex string) itermColour {
	rgb := colour.HexToRGB(hex)
	return itermColour{
		Red:        float64(rgb.R) / 255.0,
		Green:      float64(rgb.G) / 255.0,
		Blue:       float64(rgb.B) / 255.0,
		Alpha:      1.0,
		ColorSpace: "sRGB",
	}
}

func generateITerm2(p colour.Palette, _ string, _ Mode) ([]byte, error) {
	scheme := map[string]itermColour{
		"Background Color":  newITermColour(p[colour.RoleBackground]),
		"Foreground Color":  newITermColour(p[colour.RoleForeground]),
		"Cursor Color":      newITermColour(p[colour.RoleCursor]),
		"Cursor Text Color": newITermColour(p[colour.RoleBackground]),
		"Selection Color":   newITermColour(p[colour.RoleBrightBlack]),
	}
	for i, role := range ansiOrder {
		scheme[fmt.Sprintf("Ansi %d Color", i)] = newITermColour(p[role])
	}
	return encodeBinaryPlist("iterm2", scheme)
}

// terminalColour is one colour entry in a Terminal.app .terminal plist.
// Terminal.app uses 16-bit channel values.
type terminalColour struct {
	Red   uint16 `plist:"Red Component"`
	Green uint16 `plist:"Green Component"`
	Blue  uint16 `plist:"Blue Component"`
}

func newTerminalColour(hex string) terminalColour {
	rgb := colour.HexToRGB(hex)
	return terminalColour{
		Red:   uint16(rgb.R) * 257,
		Green: uint16(rgb.G) * 257,
		Blue:  uint16(rgb.B) * 257,
	}
}

func generateTerminal(p colour.Palette, name string, _ Mode) ([]byte, error) {
	scheme := map[string]any{
		"name":            name,
		"type":            "Window Settings",
		"BackgroundColor": newTerminalColour(p[colour.RoleBackground]),
		"TextColor":       newTerminalColour(p[colour.RoleForeground]),
		"CursorColor":     newTerminalColour(p[colour.RoleCursor]),
	}
	for i, role := range ansiOrder {
		scheme[fmt.Sprintf("Ansi%dColor", i)] = newTerminalColour(p[role])
	}
	return encodeBinaryPlist("terminal", scheme)
}

func encodeBinaryPlist(format string, v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := plist.NewEncoderForFormat(&buf, plist.BinaryFormat)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode %s plist: %w", format, err)
	}
	return buf.Bytes(), nil
}
