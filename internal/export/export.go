// Package export turns validated terminal colour palettes into
// emulator-specific configuration artifacts. Every generator is a pure
// function of (palette, theme name); the orchestrator owns format dispatch,
// filenames and content types.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/tincture/internal/colour"
)

// ErrUnsupportedFormat is returned for format identifiers outside the
// supported set. It is a client error, not a generator fault.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format identifies a target terminal or configuration format.
type Format string

// The supported formats.
const (
	FormatANSI       Format = "ansi"
	FormatJSON       Format = "json"
	FormatXresources Format = "xresources"
	FormatShell      Format = "shell"
	FormatRegistry   Format = "registry"
	FormatITerm2     Format = "iterm2"
	FormatTerminal   Format = "terminal"
	FormatWinTerm    Format = "winterm"
	FormatWezTerm    Format = "wezterm"
	FormatAlacritty  Format = "alacritty"
	FormatKitty      Format = "kitty"
	FormatHyper      Format = "hyper"
	FormatGhostty    Format = "ghostty"
)

// Mode selects the wezterm output flavour. Other formats ignore it.
type Mode string

const (
	// ModeThemeOnly emits just the colour scheme snippet. Default.
	ModeThemeOnly Mode = "theme-only"

	// ModeComplete emits a full wezterm.lua including the runtime
	// colour-picker command palette entry.
	ModeComplete Mode = "complete"
)

// generator produces the artifact content for one format.
type generator func(p colour.Palette, name string, mode Mode) ([]byte, error)

var generators = map[Format]generator{
	FormatANSI:       generateANSI,
	FormatJSON:       generateJSON,
	FormatXresources: generateXresources,
	FormatShell:      generateShell,
	FormatRegistry:   generateRegistry,
	FormatITerm2:     generateITerm2,
	FormatTerminal:   generateTerminal,
	FormatWinTerm:    generateWinTerm,
	FormatWezTerm:    generateWezTerm,
	FormatAlacritty:  generateAlacritty,
	FormatKitty:      generateKitty,
	FormatHyper:      generateHyper,
	FormatGhostty:    generateGhostty,
}

var extensions = map[Format]string{
	FormatANSI:       ".sh",
	FormatJSON:       ".json",
	FormatXresources: ".Xresources",
	FormatShell:      ".sh",
	FormatRegistry:   ".reg",
	FormatITerm2:     ".itermcolors",
	FormatTerminal:   ".terminal",
	FormatWinTerm:    ".json",
	FormatWezTerm:    ".lua",
	FormatAlacritty:  ".yml",
	FormatKitty:      ".conf",
	FormatHyper:      ".js",
	FormatGhostty:    ".toml",
}

var contentTypes = map[Format]string{
	FormatANSI:       "text/x-shellscript",
	FormatJSON:       "application/json",
	FormatXresources: "text/plain",
	FormatShell:      "text/x-shellscript",
	FormatRegistry:   "text/plain",
	FormatITerm2:     "text/plain",
	FormatTerminal:   "text/plain",
	FormatWinTerm:    "application/json",
	FormatWezTerm:    "text/plain",
	FormatAlacritty:  "text/yaml",
	FormatKitty:      "text/plain",
	FormatHyper:      "application/javascript",
	FormatGhostty:    "application/toml",
}

// Formats returns all supported format identifiers in a stable order.
func Formats() []Format {
	return []Format{
		FormatANSI, FormatJSON, FormatXresources, FormatShell,
		FormatRegistry, FormatITerm2, FormatTerminal, FormatWinTerm,
		FormatWezTerm, FormatAlacritty, FormatKitty, FormatHyper,
		FormatGhostty,
	}
}

// IsValid reports whether the format identifier is supported.
func IsValid(f Format) bool {
	_, ok := generators[f]
	return ok
}

// Request describes one export.
type Request struct {
	Format  Format
	Name    string
	Palette colour.Palette
	Mode    Mode // wezterm only
}

// Artifact is the result of an export.
type Artifact struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Export validates the palette, dispatches to the format's generator and
// returns the artifact. Unknown formats fail with ErrUnsupportedFormat before
// any generator runs.
func Export(req Request) (Artifact, error) {
	gen, ok := generators[req.Format]
	if !ok {
		return Artifact{}, fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedFormat, req.Format, Formats())
	}

	name := req.Name
	if name == "" {
		name = "My Theme"
	}

	palette := colour.ValidatePalette(req.Palette)

	content, err := gen(palette, name, req.Mode)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to generate %s theme: %w", req.Format, err)
	}

	return Artifact{
		Filename:    Filename(req.Format, name),
		ContentType: ContentType(req.Format),
		Content:     content,
	}, nil
}

// Filename returns the artifact filename for a format and theme name:
// the name with spaces replaced by underscores plus the format extension.
func Filename(f Format, name string) string {
	if name == "" {
		name = "My Theme"
	}
	return strings.ReplaceAll(name, " ", "_") + extensions[f]
}

// ContentType returns the MIME type for a format's artifact.
func ContentType(f Format) string {
	return contentTypes[f]
}
