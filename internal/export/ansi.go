package export

import "github.com/jmylchreest/tincture/internal/colour"

// ansiTemplate emits a shell script of raw OSC escape sequences: OSC 4 for
// every role plus OSC 10/11 for the default foreground and background.
const ansiTemplate = `#!/bin/bash
# {{.Name}} - ANSI Color Theme

{{range .Roles}}echo -e '\033]4;{{.}};rgb:{{$.Dec .}}\007'
{{end}}
# Background and foreground
echo -e '\033]10;rgb:{{.Dec "foreground"}}\007'
echo -e '\033]11;rgb:{{.Dec "background"}}\007'
`

func generateANSI(p colour.Palette, name string, _ Mode) ([]byte, error) {
	return render("ansi", ansiTemplate, p, name)
}
