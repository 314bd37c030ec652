package export

import "github.com/jmylchreest/tincture/internal/colour"

// alacrittyTemplate is an Alacritty colour scheme. Values are quoted because
// "#" starts a YAML comment.
const alacrittyTemplate = `# {{.Name}} - Alacritty colour scheme

colors:
  primary:
    background: '{{.Get "background"}}'
    foreground: '{{.Get "foreground"}}'

  cursor:
    text: '{{.Get "background"}}'
    cursor: '{{.Get "cursor"}}'

  selection:
    text: '{{.Get "foreground"}}'
    background: '{{.Get "bright_black"}}'

  normal:
    black: '{{.Get "black"}}'
    red: '{{.Get "red"}}'
    green: '{{.Get "green"}}'
    yellow: '{{.Get "yellow"}}'
    blue: '{{.Get "blue"}}'
    magenta: '{{.Get "magenta"}}'
    cyan: '{{.Get "cyan"}}'
    white: '{{.Get "white"}}'

  bright:
    black: '{{.Get "bright_black"}}'
    red: '{{.Get "bright_red"}}'
    green: '{{.Get "bright_green"}}'
    yellow: '{{.Get "bright_yellow"}}'
    blue: '{{.Get "bright_blue"}}'
    magenta: '{{.Get "bright_magenta"}}'
    cyan: '{{.Get "bright_cyan"}}'
    white: '{{.Get "bright_white"}}'
`

func generateAlacritty(p colour.Palette, name string, _ Mode) ([]byte, error) {
	return render("alacritty", alacrittyTemplate, p, name)
}
