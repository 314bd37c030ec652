// Package colour provides the colour model for terminal themes: the 19-role
// palette, hex codec helpers, extraction from images, role mapping, and
// validation.
package colour

// Role is one of the 19 fixed semantic colour slots a terminal theme defines.
type Role string

// The canonical roles. Order matters: Roles() returns them in the fixed
// table order used by the mapper, the validator, and every export format.
const (
	RoleBackground    Role = "background"
	RoleForeground    Role = "foreground"
	RoleCursor        Role = "cursor"
	RoleBlack         Role = "black"
	RoleRed           Role = "red"
	RoleGreen         Role = "green"
	RoleYellow        Role = "yellow"
	RoleBlue          Role = "blue"
	RoleMagenta       Role = "magenta"
	RoleCyan          Role = "cyan"
	RoleWhite         Role = "white"
	RoleBrightBlack   Role = "bright_black"
	RoleBrightRed     Role = "bright_red"
	RoleBrightGreen   Role = "bright_green"
	RoleBrightYellow  Role = "bright_yellow"
	RoleBrightBlue    Role = "bright_blue"
	RoleBrightMagenta Role = "bright_magenta"
	RoleBrightCyan    Role = "bright_cyan"
	RoleBrightWhite   Role = "bright_white"
)

// roleOrder is the canonical ordering of all 19 roles.
var roleOrder = []Role{
	RoleBackground,
	RoleForeground,
	RoleCursor,
	RoleBlack,
	RoleRed,
	RoleGreen,
	RoleYellow,
	RoleBlue,
	RoleMagenta,
	RoleCyan,
	RoleWhite,
	RoleBrightBlack,
	RoleBrightRed,
	RoleBrightGreen,
	RoleBrightYellow,
	RoleBrightBlue,
	RoleBrightMagenta,
	RoleBrightCyan,
	RoleBrightWhite,
}

// Roles returns all 19 roles in canonical order. The returned slice is a copy
// and safe to modify.
func Roles() []Role {
	roles := make([]Role, len(roleOrder))
	copy(roles, roleOrder)
	return roles
}

// baseRoles are the 8 normal-intensity ANSI roles in ANSI numbering order.
var baseRoles = []Role{
	RoleBlack, RoleRed, RoleGreen, RoleYellow,
	RoleBlue, RoleMagenta, RoleCyan, RoleWhite,
}

// brightRole returns the bright counterpart of a base ANSI role.
func brightRole(base Role) Role {
	return Role("bright_" + string(base))
}

// Palette maps roles to hex colour strings. A palette is complete when all
// 19 roles are present; ValidatePalette guarantees completeness.
type Palette map[Role]string

// Complete reports whether every one of the 19 roles is present and non-empty.
func (p Palette) Complete() bool {
	for _, role := range roleOrder {
		if p[role] == "" {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy of the palette.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for role, hex := range p {
		out[role] = hex
	}
	return out
}

// DefaultPalette returns the built-in dark palette used for new themes and as
// the validator's hard defaults.
func DefaultPalette() Palette {
	return Palette{
		RoleBackground:    "#1e1e1e",
		RoleForeground:    "#d4d4d4",
		RoleCursor:        "#ffffff",
		RoleBlack:         "#000000",
		RoleRed:           "#cd3131",
		RoleGreen:         "#0dbc79",
		RoleYellow:        "#e5e510",
		RoleBlue:          "#2472c8",
		RoleMagenta:       "#bc3fbc",
		RoleCyan:          "#11a8cd",
		RoleWhite:         "#e5e5e5",
		RoleBrightBlack:   "#666666",
		RoleBrightRed:     "#f14c4c",
		RoleBrightGreen:   "#23d18b",
		RoleBrightYellow:  "#f5f543",
		RoleBrightBlue:    "#3b8eea",
		RoleBrightMagenta: "#d670d6",
		RoleBrightCyan:    "#29b8db",
		RoleBrightWhite:   "#e5e5e5",
	}
}
