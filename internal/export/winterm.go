package export

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/tincture/internal/colour"
)

// winTermScheme is a Windows Terminal colour scheme object. Field order
// matches the settings.json convention; Windows Terminal names the magenta
// pair purple/brightPurple.
type winTermScheme struct {
	Name          string `json:"name"`
	Background    string `json:"background"`
	Foreground    string `json:"foreground"`
	Cursor        string `json:"cursorColor"`
	SelectionBg   string `json:"selectionBackground"`
	Black         string `json:"black"`
	Red           string `json:"red"`
	Green         string `json:"green"`
	Yellow        string `json:"yellow"`
	Blue          string `json:"blue"`
	Purple        string `json:"purple"`
	Cyan          string `json:"cyan"`
	White         string `json:"white"`
	BrightBlack   string `json:"brightBlack"`
	BrightRed     string `json:"brightRed"`
	BrightGreen   string `json:"brightGreen"`
	BrightYellow  string `json:"brightYellow"`
	BrightBlue    string `json:"brightBlue"`
	BrightPurple  string `json:"brightPurple"`
	BrightCyan    string `json:"brightCyan"`
	BrightWhite   string `json:"brightWhite"`
}

func generateWinTerm(p colour.Palette, name string, _ Mode) ([]byte, error) {
	scheme := winTermScheme{
		Name:         name,
		Background:   p[colour.RoleBackground],
		Foreground:   p[colour.RoleForeground],
		Cursor:       p[colour.RoleCursor],
		SelectionBg:  p[colour.RoleBrightBlack],
		Black:        p[colour.RoleBlack],
		Red:          p[colour.RoleRed],
		Green:        p[colour.RoleGreen],
		Yellow:       p[colour.RoleYellow],
		Blue:         p[colour.RoleBlue],
		Purple:       p[colour.RoleMagenta],
		Cyan:         p[colour.RoleCyan],
		White:        p[colour.RoleWhite],
		BrightBlack:  p[colour.RoleBrightBlack],
		BrightRed:    p[colour.RoleBrightRed],
		BrightGreen:  p[colour.RoleBrightGreen],
		BrightYellow: p[colour.RoleBrightYellow],
		BrightBlue:   p[colour.RoleBrightBlue],
		BrightPurple: p[colour.RoleBrightMagenta],
		BrightCyan:   p[colour.RoleBrightCyan],
		BrightWhite:  p[colour.RoleBrightWhite],
	}

	out, err := json.MarshalIndent(scheme, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scheme: %w", err)
	}
	return append(out, '\n'), nil
}
