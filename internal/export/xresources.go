package export

import "github.com/jmylchreest/tincture/internal/colour"

const xresourcesTemplate = `! {{.Name}} - Xresources Theme
! Merge with: xrdb -merge <file>

*.background: {{.Get "background"}}
*.foreground: {{.Get "foreground"}}
*.cursorColor: {{.Get "cursor"}}

{{range $i, $role := .AnsiRoles}}*.color{{$i}}: {{$.Get $role}}
{{end}}`

func generateXresources(p colour.Palette, name string, _ Mode) ([]byte, error) {
	return render("xresources", xresourcesTemplate, p, name)
}
