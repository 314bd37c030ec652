package colour

// fallbacks is the designated fallback chain: a missing role copies the
// listed role's value when that role has already been resolved. Every
// fallback target appears earlier in the canonical role order, so a single
// in-order pass resolves the whole chain.
var fallbacks = map[Role]Role{
	RoleCursor:        RoleForeground,
	RoleBlack:         RoleBackground,
	RoleWhite:         RoleForeground,
	RoleBrightBlack:   RoleBlack,
	RoleBrightRed:     RoleRed,
	RoleBrightGreen:   RoleGreen,
	RoleBrightYellow:  RoleYellow,
	RoleBrightBlue:    RoleBlue,
	RoleBrightMagenta: RoleMagenta,
	RoleBrightCyan:    RoleCyan,
	RoleBrightWhite:   RoleWhite,
}

// ValidatePalette fills every missing role of a possibly incomplete palette,
// walking the 19 roles in canonical order: keep a present value (normalised),
// else copy the role's resolved fallback, else apply the hard default.
//
// The result always has all 19 roles with canonical 6-digit hex values, and
// the function is idempotent: validating a complete palette is a no-op.
func ValidatePalette(p Palette) Palette {
	defaults := DefaultPalette()
	out := make(Palette, len(roleOrder))

	for _, role := range roleOrder {
		if v := p[role]; v != "" {
			out[role] = Normalise(v)
			continue
		}
		if fb, ok := fallbacks[role]; ok {
			if v, resolved := out[fb]; resolved {
				out[role] = v
				continue
			}
		}
		out[role] = defaults[role]
	}

	return out
}
