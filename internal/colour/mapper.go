package colour

import "sort"

// mapperDefaults fill any of the 8 base ANSI roles the candidate pool could
// not cover. Pure primaries, matching the historical behaviour.
var mapperDefaults = Palette{
	RoleBlack:   "#000000",
	RoleRed:     "#ff0000",
	RoleGreen:   "#00ff00",
	RoleYellow:  "#ffff00",
	RoleBlue:    "#0000ff",
	RoleMagenta: "#ff00ff",
	RoleCyan:    "#00ffff",
	RoleWhite:   "#ffffff",
}

// channelProxy maps colour-named roles to the single RGB channel used as
// their selection heuristic. Yellow, magenta and cyan borrow their nearest
// primary's channel; this is a deliberate simplification, not hue matching.
var channelProxy = map[Role]byte{
	RoleRed:     'r',
	RoleGreen:   'g',
	RoleYellow:  'r',
	RoleBlue:    'b',
	RoleMagenta: 'b',
	RoleCyan:    'g',
}

// ansiCriteria drives step 4 of the mapping: the 16 ANSI roles in fixed
// order, each with its selection rule against the remaining pool.
type criterion int

const (
	pickDarkest criterion = iota
	pickBrightest
	pickSecondDarkest
	pickSecondBrightest
	pickMaxChannel           // highest value of the role's proxy channel
	pickBrightestThenChannel // (brightness, proxy channel) descending
)

var ansiCriteria = []struct {
	role Role
	rule criterion
}{
	{RoleBlack, pickDarkest},
	{RoleWhite, pickBrightest},
	{RoleRed, pickMaxChannel},
	{RoleGreen, pickMaxChannel},
	{RoleYellow, pickMaxChannel},
	{RoleBlue, pickMaxChannel},
	{RoleMagenta, pickMaxChannel},
	{RoleCyan, pickMaxChannel},
	{RoleBrightBlack, pickSecondDarkest},
	{RoleBrightRed, pickBrightestThenChannel},
	{RoleBrightGreen, pickBrightestThenChannel},
	{RoleBrightYellow, pickBrightestThenChannel},
	{RoleBrightBlue, pickBrightestThenChannel},
	{RoleBrightMagenta, pickBrightestThenChannel},
	{RoleBrightCyan, pickBrightestThenChannel},
	{RoleBrightWhite, pickSecondBrightest},
}

// MapRoles assigns ranked candidate colours (most representative first) to
// terminal roles. Selection is destructive: each chosen colour leaves the
// pool, so no colour serves two roles and earlier rules get first pick of the
// extremes. Roles the pool cannot cover are left absent for the validator,
// except the 8 base ANSI roles which fall back to primaries; every bright_X
// is then recomputed as Lighten(X), replacing anything the greedy pass chose.
func MapRoles(candidates []string) Palette {
	pool := make([]string, 0, len(candidates))
	for _, c := range candidates {
		pool = append(pool, Normalise(c))
	}

	palette := make(Palette, len(roleOrder))

	assign := func(role Role, pick func([]string) int) {
		if len(pool) == 0 {
			return
		}
		i := pick(pool)
		palette[role] = pool[i]
		pool = append(pool[:i], pool[i+1:]...)
	}

	// Special roles claim the extremes before any ANSI slot runs.
	assign(RoleBackground, minBy(Brightness))
	assign(RoleForeground, maxBy(Brightness))
	assign(RoleCursor, maxBy(Brightness))

	for _, c := range ansiCriteria {
		ch := channelProxy[baseOf(c.role)]
		switch c.rule {
		case pickDarkest:
			assign(c.role, minBy(Brightness))
		case pickBrightest:
			assign(c.role, maxBy(Brightness))
		case pickSecondDarkest:
			assign(c.role, nthDarkest(1))
		case pickSecondBrightest:
			assign(c.role, nthBrightest(1))
		case pickMaxChannel:
			assign(c.role, maxBy(func(hex string) float64 { return channelValue(hex, ch) }))
		case pickBrightestThenChannel:
			assign(c.role, brightestThenChannel(ch))
		}
	}

	for _, role := range baseRoles {
		if palette[role] == "" {
			palette[role] = mapperDefaults[role]
		}
	}

	// Bright variants are always derived, never taken from extraction.
	for _, role := range baseRoles {
		palette[brightRole(role)] = Lighten(palette[role])
	}

	return palette
}

// minBy returns a picker selecting the pool index with the lowest key.
// Ties go to the earliest candidate.
func minBy(key func(string) float64) func([]string) int {
	return func(pool []string) int {
		best := 0
		bestKey := key(pool[0])
		for i := 1; i < len(pool); i++ {
			if k := key(pool[i]); k < bestKey {
				best, bestKey = i, k
			}
		}
		return best
	}
}

// maxBy returns a picker selecting the pool index with the highest key.
// Ties go to the earliest candidate.
func maxBy(key func(string) float64) func([]string) int {
	return func(pool []string) int {
		best := 0
		bestKey := key(pool[0])
		for i := 1; i < len(pool); i++ {
			if k := key(pool[i]); k > bestKey {
				best, bestKey = i, k
			}
		}
		return best
	}
}

// nthDarkest picks the n-th darkest remaining colour (0-based), clamped to
// the pool size so a single-entry pool still yields a pick.
func nthDarkest(n int) func([]string) int {
	return func(pool []string) int {
		order := sortedIndices(pool, false)
		if n >= len(order) {
			n = len(order) - 1
		}
		return order[n]
	}
}

// nthBrightest picks the n-th brightest remaining colour (0-based).
func nthBrightest(n int) func([]string) int {
	return func(pool []string) int {
		order := sortedIndices(pool, true)
		if n >= len(order) {
			n = len(order) - 1
		}
		return order[n]
	}
}

// brightestThenChannel picks the colour maximising (brightness, channel) as a
// descending tie-break tuple.
func brightestThenChannel(ch byte) func([]string) int {
	return func(pool []string) int {
		best := 0
		for i := 1; i < len(pool); i++ {
			bi, bb := Brightness(pool[i]), Brightness(pool[best])
			switch {
			case bi > bb:
				best = i
			case bi == bb && channelValue(pool[i], ch) > channelValue(pool[best], ch):
				best = i
			}
		}
		return best
	}
}

// sortedIndices returns pool indices ordered by brightness, stable so equal
// colours keep their pool order.
func sortedIndices(pool []string, descending bool) []int {
	order := make([]int, len(pool))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ba, bb := Brightness(pool[order[a]]), Brightness(pool[order[b]])
		if descending {
			return ba > bb
		}
		return ba < bb
	})
	return order
}

// baseOf strips the bright_ prefix from a role, if present.
func baseOf(role Role) Role {
	const prefix = "bright_"
	s := string(role)
	if len(s) > len(prefix) && s[:len(prefix)] == prefix {
		return Role(s[len(prefix):])
	}
	return role
}
