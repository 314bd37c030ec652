// Package install splices a generated colour block into a user's wezterm.lua.
// The block is wrapped in marker comments so a later install replaces it
// instead of stacking a second copy.
package install

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/export"
)

// ErrPatternNotFound means the config has no "return config" line to splice
// before and no previously installed block to replace.
var ErrPatternNotFound = errors.New("no 'return config' statement found in config")

const (
	beginMarker = "-- tincture theme begin"
	endMarker   = "-- tincture theme end"

	returnStmt = "return config"
)

// DefaultConfigPath returns ~/.wezterm.lua.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".wezterm.lua"), nil
}

// Theme writes the palette's colour block into the wezterm config at path.
// A previously installed block is replaced in place; otherwise the block is
// inserted immediately before the final "return config". The file is written
// back in one pass with its original permissions when it exists.
func Theme(path string, p colour.Palette, name string) error {
	block, err := themeBlock(p, name)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return writeConfig(path, minimalConfig(block), 0o644)
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	updated, err := splice(string(data), block)
	if err != nil {
		return err
	}
	return writeConfig(path, updated, mode)
}

// ColourBlock returns the marker-wrapped config.colors assignment, for
// callers that fall back to manual installation instructions.
func ColourBlock(p colour.Palette, name string) (string, error) {
	return themeBlock(p, name)
}

// splice replaces an existing managed block, or inserts one before the last
// "return config" line.
func splice(config, block string) (string, error) {
	if begin := strings.Index(config, beginMarker); begin >= 0 {
		end := strings.Index(config[begin:], endMarker)
		if end >= 0 {
			after := config[begin+end+len(endMarker):]
			return config[:begin] + block + after, nil
		}
		// Begin marker without end marker: treat the rest of the line range
		// as unmanaged and fall through to the insert path.
	}

	idx := strings.LastIndex(config, returnStmt)
	if idx < 0 {
		return "", ErrPatternNotFound
	}
	return config[:idx] + block + "\n" + config[idx:], nil
}

// themeBlock renders the marker-wrapped colour assignment.
func themeBlock(p colour.Palette, name string) (string, error) {
	table, err := export.WezTermColourTable(colour.ValidatePalette(p))
	if err != nil {
		return "", fmt.Errorf("failed to generate wezterm colours: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", beginMarker, name)
	fmt.Fprintf(&b, "config.colors = %s\n", table)
	b.WriteString(endMarker)
	return b.String(), nil
}

// minimalConfig is used when no wezterm.lua exists yet.
func minimalConfig(block string) string {
	return fmt.Sprintf(`local wezterm = require("wezterm")
local config = wezterm.config_builder()

%s

return config
`, block)
}

func writeConfig(path, content string, mode os.FileMode) error {
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// WezTermRunning reports whether a wezterm process is currently running, so
// the CLI can tell the user to reload. Errors from the process listing are
// swallowed: this is a hint, not a guarantee.
func WezTermRunning() bool {
	processes, err := ps.Processes()
	if err != nil {
		return false
	}
	for _, p := range processes {
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == "wezterm" || name == "wezterm-gui" {
			return true
		}
	}
	return false
}
