package export

import "github.com/jmylchreest/tincture/internal/colour"

// registryTemplate emits a Windows Registry import file with one value per
// role under a Console key named after the theme. Hex values carry no "#".
const registryTemplate = `Windows Registry Editor Version 5.00

[HKEY_CURRENT_USER\Console\{{.Name}}]
{{range .Roles}}"{{.}}"="{{$.Plain .}}"
{{end}}`

func generateRegistry(p colour.Palette, name string, _ Mode) ([]byte, error) {
	return render("registry", registryTemplate, p, name)
}
