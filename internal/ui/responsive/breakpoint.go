package responsive

// Breakpoint is a named viewport tier. The styling system is mobile-first: tablet tokens
// carry the md: prefix and desktop tokens the lg: prefix.
type Breakpoint int

const (
	Mobile Breakpoint = iota
	Tablet
	Desktop
)

var breakpointNames = [...]string{
	Mobile:  "mobile",
	Tablet:  "tablet",
	Desktop: "desktop",
}

// Breakpoints returns every breakpoint in resolution order.
func Breakpoints() []Breakpoint {
	return []Breakpoint{Mobile, Tablet, Desktop}
}

func (b Breakpoint) String() string {
	if !b.Valid() {
		return "unknown"
	}
	return breakpointNames[b]
}

// Valid reports whether b is one of Mobile, Tablet or Desktop.
func (b Breakpoint) Valid() bool {
	return b >= Mobile && b <= Desktop
}

// ParseBreakpoint maps a configuration key to its Breakpoint.
func ParseBreakpoint(name string) (Breakpoint, bool) {
	for i, candidate := range breakpointNames {
		if candidate == name {
			return Breakpoint(i), true
		}
	}
	return 0, false
}
