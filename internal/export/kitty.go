package export

import "github.com/jmylchreest/tincture/internal/colour"

// kittyTemplate is a Kitty colour include. Selection colours have no
// dedicated palette role, so they default to bright_black on foreground.
const kittyTemplate = `# {{.Name}}
# Kitty colour theme - include from kitty.conf

background {{.Get "background"}}
foreground {{.Get "foreground"}}
cursor {{.Get "cursor"}}
cursor_text_color {{.Get "background"}}

selection_background {{.Get "bright_black"}}
selection_foreground {{.Get "foreground"}}

{{range $i, $role := .AnsiRoles}}color{{$i}} {{$.Get $role}}
{{end}}`

func generateKitty(p colour.Palette, name string, _ Mode) ([]byte, error) {
	return render("kitty", kittyTemplate, p, name)
}
