// Package sections holds the page sections that consume the responsive resolver and the
// universal feature compiler. Each section decodes its flat prop object from YAML, resolves
// its responsive props against the theme tables and wraps its markup in a root element
// carrying the compiled universal features.
package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/studio/internal/logger"
	"github.com/alexisbeaulieu97/studio/internal/ui/classes"
	"github.com/alexisbeaulieu97/studio/internal/ui/responsive"
	"github.com/alexisbeaulieu97/studio/internal/ui/style"
	"github.com/alexisbeaulieu97/studio/internal/ui/tokens"
	"github.com/alexisbeaulieu97/studio/internal/ui/universal"
)

// RenderContext carries what every section needs at render time.
type RenderContext struct {
	Theme  tokens.Theme
	Logger *logger.Logger
}

// NewRenderContext returns a context using the default theme and a discarding logger.
func NewRenderContext() RenderContext {
	return RenderContext{Theme: tokens.DefaultTheme(), Logger: logger.Nop()}
}

// Section is a decoded page section.
type Section interface {
	Type() string
	ID() string
	Render(ctx RenderContext) g.Node
	Resolve(ctx RenderContext) Resolution
}

// Resolution describes the root element of a section and how each responsive prop
// resolved.
type Resolution struct {
	Type  string
	ID    string
	Root  universal.Result
	Props []PropTokens
}

// PropTokens records the tokens a responsive prop produced.
type PropTokens struct {
	Name        string
	Table       string
	Class       string
	Breakpoints [3]string
}

// Base carries the props shared by every section: the universal features, an extra class
// name and an inline style literal.
type Base struct {
	universal.Features `yaml:",inline"`

	ClassName string `yaml:"className,omitempty"`
	Style     string `yaml:"style,omitempty"`

	id    string
	style style.Map
}

// ID returns the section id assigned by the page.
func (b *Base) ID() string {
	return b.id
}

// bind assigns the page id and parses the style literal.
func (b *Base) bind(id string) error {
	parsed, err := style.Parse(b.Style)
	if err != nil {
		return err
	}
	b.id = id
	b.style = parsed
	return nil
}

// root compiles the root element of a section. className holds the section's own resolved
// classes; computed holds the section's own inline styles, which the style literal overrides.
func (b *Base) root(sectionType, className string, computed style.Map) universal.Result {
	return universal.Compile(b.Features, universal.Root{
		ClassName: classes.Join(className, b.ClassName),
		Style:     style.Merge(computed, b.style),
		Marker:    universal.Marker{Type: sectionType, ID: b.id},
	})
}

// rootAttrs converts a compiled root into element attributes.
func rootAttrs(res universal.Result) []g.Node {
	nodes := make([]g.Node, 0, len(res.Attributes)+2)
	if res.Class != "" {
		nodes = append(nodes, h.Class(res.Class))
	}
	if inline := res.Style.String(); inline != "" {
		nodes = append(nodes, g.Attr("style", inline))
	}
	for _, attr := range res.Attributes {
		nodes = append(nodes, g.Attr(attr.Name, attr.Value))
	}
	return nodes
}

// orDefault returns v, or a scalar of fallback when v is unset.
func orDefault[K comparable](v responsive.Value[K], fallback K) responsive.Value[K] {
	if v.IsZero() {
		return responsive.Scalar(fallback)
	}
	return v
}

// propTokens resolves v against t for the whole page and for each breakpoint.
func propTokens[K comparable](name, table string, v responsive.Value[K], t responsive.Table[K]) PropTokens {
	out := PropTokens{Name: name, Table: table, Class: responsive.Resolve(v, t)}
	for i, bp := range responsive.Breakpoints() {
		out.Breakpoints[i] = responsive.ResolveAt(v, t, bp)
	}
	return out
}

// classOf joins the resolved classes of props.
func classOf(props []PropTokens) string {
	parts := make([]string, 0, len(props))
	for _, prop := range props {
		parts = append(parts, prop.Class)
	}
	return classes.Join(parts...)
}

// warnUnknown logs enum values that will contribute nothing.
func (b *Base) warnUnknown(log *logger.Logger) {
	if !log.Enabled("warn") {
		return
	}
	if b.Animation != "" && !b.Animation.Valid() {
		log.With("value", string(b.Animation)).Warn("unknown animation preset ignored")
	}
	if b.AnimationDelay != "" && !b.AnimationDelay.Valid() {
		log.With("value", string(b.AnimationDelay)).Warn("unknown animation delay ignored")
	}
	if b.Hover != "" && !b.Hover.Valid() {
		log.With("value", string(b.Hover)).Warn("unknown hover effect ignored")
	}
}
