package export

import "github.com/jmylchreest/tincture/internal/colour"

// shellTemplate exports one TERM_COLOR_* variable per role so shell scripts
// and prompts can reference the active theme.
const shellTemplate = `#!/bin/bash
# {{.Name}} - Shell Color Theme

{{range .Roles}}export TERM_COLOR_{{$.Upper .}}="{{$.Get .}}"
{{end}}`

func generateShell(p colour.Palette, name string, _ Mode) ([]byte, error) {
	return render("shell", shellTemplate, p, name)
}
