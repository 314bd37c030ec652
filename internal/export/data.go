package export

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/jmylchreest/tincture/internal/colour"
)

// ansiOrder lists the 16 ANSI roles in colour-number order (color0..color15).
var ansiOrder = []colour.Role{
	colour.RoleBlack, colour.RoleRed, colour.RoleGreen, colour.RoleYellow,
	colour.RoleBlue, colour.RoleMagenta, colour.RoleCyan, colour.RoleWhite,
	colour.RoleBrightBlack, colour.RoleBrightRed, colour.RoleBrightGreen,
	colour.RoleBrightYellow, colour.RoleBrightBlue, colour.RoleBrightMagenta,
	colour.RoleBrightCyan, colour.RoleBrightWhite,
}

// themeData is the payload handed to every text format template. Templates
// read colours through its methods so each template stays a plain literal of
// its target format.
type themeData struct {
	Name    string
	palette colour.Palette
}

// Get returns the hex value (with "#") of a role.
func (d themeData) Get(role string) string {
	return d.palette[colour.Role(role)]
}

// Plain returns the hex value without the leading "#".
func (d themeData) Plain(role string) string {
	return strings.TrimPrefix(d.Get(role), "#")
}

// Upper returns the role name in shell-variable casing.
func (d themeData) Upper(role string) string {
	return strings.ToUpper(role)
}

// Dec returns the role's channels as decimal "r/g/b", the form the ANSI
// escape script uses.
func (d themeData) Dec(role string) string {
	rgb := colour.HexToRGB(d.Get(role))
	return fmt.Sprintf("%d/%d/%d", rgb.R, rgb.G, rgb.B)
}

// Roles returns all 19 role names in canonical order.
func (d themeData) Roles() []string {
	roles := colour.Roles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return names
}

// AnsiRoles returns the 16 ANSI role names in colour-number order.
func (d themeData) AnsiRoles() []string {
	names := make([]string, len(ansiOrder))
	for i, r := range ansiOrder {
		names[i] = string(r)
	}
	return names
}

// Slug returns the theme name lowercased with spaces as underscores.
func (d themeData) Slug() string {
	return strings.ToLower(strings.ReplaceAll(d.Name, " ", "_"))
}

// render parses and executes a format template against the palette.
func render(format string, text string, p colour.Palette, name string) ([]byte, error) {
	tmpl, err := template.New(format).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", format, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, themeData{Name: name, palette: p}); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", format, err)
	}
	return buf.Bytes(), nil
}
