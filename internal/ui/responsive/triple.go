package responsive

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Triple holds the class tokens a single scalar expands to, one per breakpoint.
type Triple struct {
	Mobile  string
	Tablet  string
	Desktop string
}

// Tokens builds a Triple from its named tokens.
func Tokens(mobile, tablet, desktop string) Triple {
	return Triple{Mobile: mobile, Tablet: tablet, Desktop: desktop}
}

// TripleOf builds a Triple from the positional [mobile, tablet, desktop] form.
func TripleOf(tokens [3]string) Triple {
	return Triple{Mobile: tokens[0], Tablet: tokens[1], Desktop: tokens[2]}
}

// Token returns the token scoped to bp, or "" for an unknown breakpoint.
func (t Triple) Token(bp Breakpoint) string {
	switch bp {
	case Mobile:
		return t.Mobile
	case Tablet:
		return t.Tablet
	case Desktop:
		return t.Desktop
	default:
		return ""
	}
}

// Tokens returns the positional form of the triple.
func (t Triple) Tokens() [3]string {
	return [3]string{t.Mobile, t.Tablet, t.Desktop}
}

func (t *Triple) set(bp Breakpoint, token string) {
	switch bp {
	case Mobile:
		t.Mobile = token
	case Tablet:
		t.Tablet = token
	case Desktop:
		t.Desktop = token
	}
}

// UnmarshalYAML accepts either a sequence [mobile, tablet, desktop] or a mapping with
// mobile/tablet/desktop keys. Missing positions stay empty; extra items and unknown keys
// are ignored.
func (t *Triple) UnmarshalYAML(value *yaml.Node) error {
	*t = Triple{}

	switch value.Kind {
	case yaml.SequenceNode:
		for i, item := range value.Content {
			if i >= len(breakpointNames) {
				break
			}
			var token string
			if err := item.Decode(&token); err != nil {
				return fmt.Errorf("token %d: %w", i, err)
			}
			t.set(Breakpoint(i), token)
		}
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			bp, ok := ParseBreakpoint(value.Content[i].Value)
			if !ok {
				continue
			}
			var token string
			if err := value.Content[i+1].Decode(&token); err != nil {
				return fmt.Errorf("%s token: %w", bp, err)
			}
			t.set(bp, token)
		}
		return nil
	default:
		return fmt.Errorf("line %d: style tokens must be a list or a mobile/tablet/desktop mapping", value.Line)
	}
}

// TripleFrom normalizes generically decoded data, such as a TOML array or inline table,
// into a Triple using the same rules as UnmarshalYAML.
func TripleFrom(raw any) (Triple, error) {
	var t Triple

	switch v := raw.(type) {
	case Triple:
		return v, nil
	case [3]string:
		return TripleOf(v), nil
	case []string:
		for i, token := range v {
			if i >= len(breakpointNames) {
				break
			}
			t.set(Breakpoint(i), token)
		}
		return t, nil
	case []any:
		for i, item := range v {
			if i >= len(breakpointNames) {
				break
			}
			token, ok := item.(string)
			if !ok {
				return Triple{}, fmt.Errorf("token %d: expected string, got %T", i, item)
			}
			t.set(Breakpoint(i), token)
		}
		return t, nil
	case map[string]string:
		for key, token := range v {
			if bp, ok := ParseBreakpoint(key); ok {
				t.set(bp, token)
			}
		}
		return t, nil
	case map[string]any:
		for key, item := range v {
			bp, ok := ParseBreakpoint(key)
			if !ok {
				continue
			}
			token, ok := item.(string)
			if !ok {
				return Triple{}, fmt.Errorf("%s token: expected string, got %T", bp, item)
			}
			t.set(bp, token)
		}
		return t, nil
	default:
		return Triple{}, fmt.Errorf("style tokens must be a list or a mobile/tablet/desktop table, got %T", raw)
	}
}

// Table maps every scalar of one visual property to its Triple.
type Table[K comparable] map[K]Triple

// TableFromTuples builds a Table from positional entries.
func TableFromTuples[K comparable](tuples map[K][3]string) Table[K] {
	table := make(Table[K], len(tuples))
	for key, tokens := range tuples {
		table[key] = TripleOf(tokens)
	}
	return table
}

// Lookup returns the triple registered for key. A nil table has no entries.
func (t Table[K]) Lookup(key K) (Triple, bool) {
	triple, ok := t[key]
	return triple, ok
}
