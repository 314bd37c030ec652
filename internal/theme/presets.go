package theme

import "github.com/jmylchreest/tincture/internal/colour"

// presetOrder keeps preset listings stable.
var presetOrder = []string{
	"Tokyo Night",
	"Solarized Dark",
	"Solarized Light",
	"Dracula",
	"Monokai",
	"Nord",
	"Ocean",
}

// presets are the built-in palettes. None of them carry a cursor-text role so
// each maps only the roles the scheme defines; validation fills the rest.
var presets = map[string]colour.Palette{
	"Tokyo Night": {
		colour.RoleBackground:    "#1a1b26",
		colour.RoleForeground:    "#a9b1d6",
		colour.RoleCursor:        "#ffffff",
		colour.RoleBlack:         "#1a1b26",
		colour.RoleRed:           "#f7768e",
		colour.RoleGreen:         "#9ece6a",
		colour.RoleYellow:        "#e0af68",
		colour.RoleBlue:          "#7aa2f7",
		colour.RoleMagenta:       "#bb9af7",
		colour.RoleCyan:          "#7dcfff",
		colour.RoleWhite:         "#a9b1d6",
		colour.RoleBrightBlack:   "#414868",
		colour.RoleBrightRed:     "#f7768e",
		colour.RoleBrightGreen:   "#9ece6a",
		colour.RoleBrightYellow:  "#e0af68",
		colour.RoleBrightBlue:    "#7aa2f7",
		colour.RoleBrightMagenta: "#bb9af7",
		colour.RoleBrightCyan:    "#7dcfff",
		colour.RoleBrightWhite:   "#c0caf5",
	},
	"Solarized Dark": {
		colour.RoleBackground:    "#002b36",
		colour.RoleForeground:    "#839496",
		colour.RoleCursor:        "#ffffff",
		colour.RoleBlack:         "#073642",
		colour.RoleRed:           "#dc322f",
		colour.RoleGreen:         "#586e75",
		colour.RoleYellow:        "#657b83",
		colour.RoleBlue:          "#268bd2",
		colour.RoleMagenta:       "#d33682",
		colour.RoleCyan:          "#2aa198",
		colour.RoleWhite:         "#839496",
		colour.RoleBrightBlack:   "#002b36",
		colour.RoleBrightRed:     "#cb4b16",
		colour.RoleBrightGreen:   "#93a1a1",
		colour.RoleBrightYellow:  "#839496",
		colour.RoleBrightBlue:    "#6c71c4",
		colour.RoleBrightMagenta: "#dc322f",
		colour.RoleBrightCyan:    "#2aa198",
		colour.RoleBrightWhite:   "#fdf6e3",
	},
	"Solarized Light": {
		colour.RoleBackground:    "#fdf6e3",
		colour.RoleForeground:    "#657b83",
		colour.RoleCursor:        "#268bd2",
		colour.RoleBlack:         "#073642",
		colour.RoleRed:           "#dc322f",
		colour.RoleGreen:         "#586e75",
		colour.RoleYellow:        "#657b83",
		colour.RoleBlue:          "#268bd2",
		colour.RoleMagenta:       "#d33682",
		colour.RoleCyan:          "#2aa198",
		colour.RoleWhite:         "#fdf6e3",
		colour.RoleBrightBlack:   "#002b36",
		colour.RoleBrightRed:     "#cb4b16",
		colour.RoleBrightGreen:   "#93a1a1",
		colour.RoleBrightYellow:  "#839496",
		colour.RoleBrightBlue:    "#6c71c4",
		colour.RoleBrightMagenta: "#dc322f",
		colour.RoleBrightCyan:    "#2aa198",
		colour.RoleBrightWhite:   "#fdf6e3",
	},
	"Dracula": {
		colour.RoleBackground:    "#282a36",
		colour.RoleForeground:    "#f8f8f2",
		colour.RoleCursor:        "#f8f8f2",
		colour.RoleBlack:         "#21222c",
		colour.RoleRed:           "#ff5555",
		colour.RoleGreen:         "#50fa7b",
		colour.RoleYellow:        "#f1fa8c",
		colour.RoleBlue:          "#bd93f9",
		colour.RoleMagenta:       "#ff79c6",
		colour.RoleCyan:          "#8be9fd",
		colour.RoleWhite:         "#f8f8f2",
		colour.RoleBrightBlack:   "#6272a4",
		colour.RoleBrightRed:     "#ff5555",
		colour.RoleBrightGreen:   "#50fa7b",
		colour.RoleBrightYellow:  "#f1fa8c",
		colour.RoleBrightBlue:    "#bd93f9",
		colour.RoleBrightMagenta: "#ff79c6",
		colour.RoleBrightCyan:    "#8be9fd",
		colour.RoleBrightWhite:   "#f8f8f2",
	},
	"Monokai": {
		colour.RoleBackground:    "#272822",
		colour.RoleForeground:    "#f8f8f2",
		colour.RoleCursor:        "#f8f8f2",
		colour.RoleBlack:         "#272822",
		colour.RoleRed:           "#f92672",
		colour.RoleGreen:         "#a6e22e",
		colour.RoleYellow:        "#f4bf75",
		colour.RoleBlue:          "#66d9ef",
		colour.RoleMagenta:       "#ae81ff",
		colour.RoleCyan:          "#a1efe4",
		colour.RoleWhite:         "#f8f8f2",
		colour.RoleBrightBlack:   "#75715e",
		colour.RoleBrightRed:     "#f92672",
		colour.RoleBrightGreen:   "#a6e22e",
		colour.RoleBrightYellow:  "#f4bf75",
		colour.RoleBrightBlue:    "#66d9ef",
		colour.RoleBrightMagenta: "#ae81ff",
		colour.RoleBrightCyan:    "#a1efe4",
		colour.RoleBrightWhite:   "#f8f8f2",
	},
	"Nord": {
		colour.RoleBackground:    "#2e3440",
		colour.RoleForeground:    "#d8dee9",
		colour.RoleCursor:        "#d8dee9",
		colour.RoleBlack:         "#2e3440",
		colour.RoleRed:           "#bf616a",
		colour.RoleGreen:         "#a3be8c",
		colour.RoleYellow:        "#ebcb8b",
		colour.RoleBlue:          "#81a1c1",
		colour.RoleMagenta:       "#b48ead",
		colour.RoleCyan:          "#88c0d0",
		colour.RoleWhite:         "#d8dee9",
		colour.RoleBrightBlack:   "#4c566a",
		colour.RoleBrightRed:     "#bf616a",
		colour.RoleBrightGreen:   "#a3be8c",
		colour.RoleBrightYellow:  "#ebcb8b",
		colour.RoleBrightBlue:    "#81a1c1",
		colour.RoleBrightMagenta: "#b48ead",
		colour.RoleBrightCyan:    "#88c0d0",
		colour.RoleBrightWhite:   "#eceff4",
	},
	"Ocean": {
		colour.RoleBackground:    "#001b33",
		colour.RoleForeground:    "#76c4de",
		colour.RoleCursor:        "#76c4de",
		colour.RoleBlack:         "#001b33",
		colour.RoleRed:           "#ff5458",
		colour.RoleGreen:         "#62d196",
		colour.RoleYellow:        "#ffd866",
		colour.RoleBlue:          "#65b7ff",
		colour.RoleMagenta:       "#c297ff",
		colour.RoleCyan:          "#6ae4e4",
		colour.RoleWhite:         "#76c4de",
		colour.RoleBrightBlack:   "#003366",
		colour.RoleBrightRed:     "#ff5458",
		colour.RoleBrightGreen:   "#62d196",
		colour.RoleBrightYellow:  "#ffd866",
		colour.RoleBrightBlue:    "#65b7ff",
		colour.RoleBrightMagenta: "#c297ff",
		colour.RoleBrightCyan:    "#6ae4e4",
		colour.RoleBrightWhite:   "#c8e6ff",
	},
}

// PresetNames returns the built-in preset names in display order.
func PresetNames() []string {
	names := make([]string, len(presetOrder))
	copy(names, presetOrder)
	return names
}

// Preset returns a copy of the named preset palette. The second return is
// false when no preset has that name.
func Preset(name string) (colour.Palette, bool) {
	p, ok := presets[name]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}
