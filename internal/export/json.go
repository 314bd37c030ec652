package export

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/tincture/internal/colour"
)

// jsonTheme is the interchange form: the same shape themes are persisted in,
// so an exported JSON theme can be loaded straight back.
type jsonTheme struct {
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors"`
}

func generateJSON(p colour.Palette, name string, _ Mode) ([]byte, error) {
	colors := make(map[string]string, len(p))
	for role, hex := range p {
		colors[string(role)] = hex
	}

	out, err := json.MarshalIndent(jsonTheme{Name: name, Colors: colors}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal theme: %w", err)
	}
	return append(out, '\n'), nil
}
