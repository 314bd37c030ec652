package export

import "github.com/jmylchreest/tincture/internal/colour"

// hyperTemplate is a Hyper configuration fragment: a JS object literal with
// the camelCase colour keys Hyper expects.
const hyperTemplate = `// {{.Name}} - Hyper theme
// Merge into ~/.hyper.js

exports.config = {
  termCSS: '',
  css: '',
  cursorColor: '{{.Get "cursor"}}',
  foregroundColor: '{{.Get "foreground"}}',
  backgroundColor: '{{.Get "background"}}',
  selectionColor: '{{.Get "bright_black"}}',
  colors: {
    black: '{{.Get "black"}}',
    red: '{{.Get "red"}}',
    green: '{{.Get "green"}}',
    yellow: '{{.Get "yellow"}}',
    blue: '{{.Get "blue"}}',
    magenta: '{{.Get "magenta"}}',
    cyan: '{{.Get "cyan"}}',
    white: '{{.Get "white"}}',
    brightBlack: '{{.Get "bright_black"}}',
    brightRed: '{{.Get "bright_red"}}',
    brightGreen: '{{.Get "bright_green"}}',
    brightYellow: '{{.Get "bright_yellow"}}',
    brightBlue: '{{.Get "bright_blue"}}',
    brightMagenta: '{{.Get "bright_magenta"}}',
    brightCyan: '{{.Get "bright_cyan"}}',
    brightWhite: '{{.Get "bright_white"}}',
  },
};
`

func generateHyper(p colour.Palette, name string, _ Mode) ([]byte, error) {
	return render("hyper", hyperTemplate, p, name)
}
