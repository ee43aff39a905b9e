package responsive

import "strings"

// Resolve turns a configured value into the class tokens for its property.
//
// A scalar expands to the mobile, tablet and desktop tokens of its triple. An override
// record contributes, for each breakpoint it names, only that breakpoint's token. A zero
// scalar ("" or 0) is treated as not configured.
func Resolve[K comparable](v Value[K], t Table[K]) string {
	switch v.kind {
	case kindScalar:
		var zero K
		if v.scalar == zero {
			return ""
		}
		triple, ok := t.Lookup(v.scalar)
		if !ok {
			return ""
		}
		return join(triple.Mobile, triple.Tablet, triple.Desktop)
	case kindResponsive:
		tokens := make([]string, 0, len(breakpointNames))
		for _, bp := range Breakpoints() {
			key := v.overrides.At(bp)
			if key == nil {
				continue
			}
			triple, ok := t.Lookup(*key)
			if !ok {
				continue
			}
			tokens = append(tokens, triple.Token(bp))
		}
		return join(tokens...)
	default:
		return ""
	}
}

// ResolveAt returns the token v contributes exactly at bp.
func ResolveAt[K comparable](v Value[K], t Table[K], bp Breakpoint) string {
	var key K
	switch v.kind {
	case kindScalar:
		var zero K
		if v.scalar == zero {
			return ""
		}
		key = v.scalar
	case kindResponsive:
		override := v.overrides.At(bp)
		if override == nil {
			return ""
		}
		key = *override
	default:
		return ""
	}

	triple, ok := t.Lookup(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(triple.Token(bp))
}

func join(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
