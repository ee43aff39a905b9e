// Package style holds inline style maps attached to rendered section roots.
package style

import (
	"sort"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"github.com/aymerick/douceur/parser"
)

// Map is a flat set of CSS property → value pairs, keyed by kebab-case property name.
type Map map[string]string

// Clone returns an independent, non-nil copy of m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for property, value := range m {
		out[property] = value
	}
	return out
}

// Has reports whether property is present, regardless of its value.
func (m Map) Has(property string) bool {
	_, ok := m[property]
	return ok
}

// Properties returns the property names in sorted order.
func (m Map) Properties() []string {
	properties := make([]string, 0, len(m))
	for property := range m {
		properties = append(properties, property)
	}
	sort.Strings(properties)
	return properties
}

// String serializes m as an inline style attribute value with properties sorted by name.
func (m Map) String() string {
	if len(m) == 0 {
		return ""
	}

	declarations := make([]string, 0, len(m))
	for _, property := range m.Properties() {
		declarations = append(declarations, property+": "+m[property])
	}
	return strings.Join(declarations, "; ")
}

// Merge returns a new map holding base with override applied on top; override wins on
// every shared property. Neither argument is modified.
func Merge(base, override Map) Map {
	out := base.Clone()
	if len(override) == 0 {
		return out
	}
	if err := mergo.Merge(&out, override, mergo.WithOverride); err != nil {
		for property, value := range override {
			out[property] = value
		}
	}
	return out
}

// Parse reads an inline style literal such as "color: #fff; background-image: url(a.png)".
// The trailing semicolon is optional.
func Parse(inline string) (Map, error) {
	inline = strings.TrimSpace(inline)
	if inline == "" {
		return Map{}, nil
	}
	if !strings.HasSuffix(inline, ";") {
		inline += ";"
	}

	declarations, err := parser.ParseDeclarations(inline)
	if err != nil {
		return nil, err
	}

	out := make(Map, len(declarations))
	for _, decl := range declarations {
		value := decl.Value
		if decl.Important {
			value += " !important"
		}
		out[strings.ToLower(decl.Property)] = value
	}
	return out, nil
}

var urlEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\a `,
	"\r", `\d `,
	"\f", `\c `,
)

// URL formats ref as a quoted CSS url() value. Quotes, backslashes and line breaks are
// escaped so the reference cannot close the value early.
func URL(ref string) string {
	return "url('" + urlEscaper.Replace(ref) + "')"
}

// Px formats a length in pixels using the shortest decimal form.
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// Ms formats a duration in milliseconds using the shortest decimal form.
func Ms(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "ms"
}
