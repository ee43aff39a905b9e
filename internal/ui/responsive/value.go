package responsive

import (
	"gopkg.in/yaml.v3"
)

type valueKind uint8

const (
	kindUnset valueKind = iota
	kindScalar
	kindResponsive
)

// Overrides is a per-breakpoint override record. A nil field means the record has no
// entry for that breakpoint; no default is substituted for it.
type Overrides[K comparable] struct {
	Mobile  *K
	Tablet  *K
	Desktop *K
}

// At returns the override for bp, or nil when none is set.
func (o Overrides[K]) At(bp Breakpoint) *K {
	switch bp {
	case Mobile:
		return o.Mobile
	case Tablet:
		return o.Tablet
	case Desktop:
		return o.Desktop
	default:
		return nil
	}
}

func (o *Overrides[K]) set(bp Breakpoint, key *K) {
	switch bp {
	case Mobile:
		o.Mobile = key
	case Tablet:
		o.Tablet = key
	case Desktop:
		o.Desktop = key
	}
}

// Value is either a scalar that applies at every breakpoint or an override record.
// The zero Value is "not configured".
type Value[K comparable] struct {
	kind      valueKind
	scalar    K
	overrides Overrides[K]
}

// Scalar wraps a single value that applies at every breakpoint.
func Scalar[K comparable](key K) Value[K] {
	return Value[K]{kind: kindScalar, scalar: key}
}

// Responsive wraps a per-breakpoint override record.
func Responsive[K comparable](overrides Overrides[K]) Value[K] {
	return Value[K]{kind: kindResponsive, overrides: overrides}
}

// PerBreakpoint builds an override record from a map. Invalid breakpoints are dropped.
func PerBreakpoint[K comparable](values map[Breakpoint]K) Value[K] {
	var overrides Overrides[K]
	for bp, key := range values {
		if !bp.Valid() {
			continue
		}
		overrides.set(bp, Ptr(key))
	}
	return Responsive(overrides)
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// IsZero reports whether no value was configured.
func (v Value[K]) IsZero() bool {
	return v.kind == kindUnset
}

// IsScalar reports whether v holds a single scalar.
func (v Value[K]) IsScalar() bool {
	return v.kind == kindScalar
}

// IsResponsive reports whether v holds an override record.
func (v Value[K]) IsResponsive() bool {
	return v.kind == kindResponsive
}

// ScalarValue returns the scalar and whether v holds one.
func (v Value[K]) ScalarValue() (K, bool) {
	return v.scalar, v.kind == kindScalar
}

// OverrideValues returns the override record and whether v holds one.
func (v Value[K]) OverrideValues() (Overrides[K], bool) {
	return v.overrides, v.kind == kindResponsive
}

// UnmarshalYAML decodes a scalar node into a scalar Value and a mapping node into an
// override record. Unknown breakpoint keys, null entries and values that cannot be decoded
// into K are skipped rather than reported.
func (v *Value[K]) UnmarshalYAML(node *yaml.Node) error {
	*v = Value[K]{}

	switch node.Kind {
	case yaml.AliasNode:
		if node.Alias != nil {
			return v.UnmarshalYAML(node.Alias)
		}
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil
		}
		var key K
		if err := node.Decode(&key); err != nil {
			return nil
		}
		*v = Scalar(key)
	case yaml.MappingNode:
		var overrides Overrides[K]
		for i := 0; i+1 < len(node.Content); i += 2 {
			bp, ok := ParseBreakpoint(node.Content[i].Value)
			if !ok {
				continue
			}
			entry := node.Content[i+1]
			if entry.Kind == yaml.ScalarNode && entry.ShortTag() == "!!null" {
				continue
			}
			var key K
			if err := entry.Decode(&key); err != nil {
				continue
			}
			overrides.set(bp, &key)
		}
		*v = Responsive(overrides)
	}

	return nil
}
