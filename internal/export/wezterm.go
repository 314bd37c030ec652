package export

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/tincture/internal/colour"
)

// wezTermTableText is the colour table literal shared by every wezterm output
// shape: the theme-only snippet, the complete config, and install splicing.
const wezTermTableText = `{
  foreground = "{{.Get "foreground"}}",
  background = "{{.Get "background"}}",
  cursor_bg = "{{.Get "cursor"}}",
  cursor_fg = "{{.Get "background"}}",
  cursor_border = "{{.Get "cursor"}}",
  selection_bg = "{{.Get "bright_black"}}",
  selection_fg = "{{.Get "foreground"}}",
  ansi = {
    "{{.Get "black"}}",
    "{{.Get "red"}}",
    "{{.Get "green"}}",
    "{{.Get "yellow"}}",
    "{{.Get "blue"}}",
    "{{.Get "magenta"}}",
    "{{.Get "cyan"}}",
    "{{.Get "white"}}",
  },
  brights = {
    "{{.Get "bright_black"}}",
    "{{.Get "bright_red"}}",
    "{{.Get "bright_green"}}",
    "{{.Get "bright_yellow"}}",
    "{{.Get "bright_blue"}}",
    "{{.Get "bright_magenta"}}",
    "{{.Get "bright_cyan"}}",
    "{{.Get "bright_white"}}",
  },
}`

// wezTermCompleteTrailer wires a command-palette entry that prompts for a hex
// colour and applies it live via set_config_overrides.
const wezTermCompleteTrailer = `wezterm.on("augment-command-palette", function(window, pane)
  return {
    {
      brief = "Set background colour",
      icon = "md_palette",
      action = wezterm.action.PromptInputLine({
        description = "Background colour (hex)",
        action = wezterm.action_callback(function(win, _, line)
          if line and line ~= "" then
            local overrides = win:get_config_overrides() or {}
            overrides.colors = overrides.colors or {}
            overrides.colors.background = line
            win:set_config_overrides(overrides)
          end
        end),
      }),
    },
  }
end)

return config
`

// WezTermColourTable renders the palette as a Lua colour table literal.
func WezTermColourTable(p colour.Palette) (string, error) {
	out, err := render("wezterm-table", wezTermTableText, p, "")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func generateWezTerm(p colour.Palette, name string, mode Mode) ([]byte, error) {
	table, err := WezTermColourTable(p)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "-- %s\n", name)

	if mode == ModeComplete {
		b.WriteString("local wezterm = require(\"wezterm\")\n")
		b.WriteString("local config = wezterm.config_builder()\n\n")
		fmt.Fprintf(&b, "config.colors = %s\n\n", table)
		b.WriteString(wezTermCompleteTrailer)
		return []byte(b.String()), nil
	}

	fmt.Fprintf(&b, "return {\n  colors = %s,\n}\n", indentTable(table))
	return []byte(b.String()), nil
}

// indentTable shifts the table literal right so it nests cleanly inside the
// theme-only return statement.
func indentTable(table string) string {
	lines := strings.Split(table, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}
