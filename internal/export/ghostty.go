package export

import "github.com/jmylchreest/tincture/internal/colour"

// ghosttyTemplate emits a TOML theme: named colours under [theme], the 16
// ANSI slots as numeric keys under [palette].
const ghosttyTemplate = `[theme]
name = "{{.Name}}"
background = "{{.Get "background"}}"
foreground = "{{.Get "foreground"}}"
cursor = "{{.Get "cursor"}}"

[palette]
{{range $i, $role := .AnsiRoles}}{{$i}} = "{{$.Get $role}}"
{{end}}`

func generateGhostty(p colour.Palette, name string, _ Mode) ([]byte, error) {
	return render("ghostty", ghosttyTemplate, p, name)
}
