package sections

import (
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Button is a call-to-action link.
type Button struct {
	Label string `yaml:"label,omitempty"`
	Href  string `yaml:"href,omitempty"`
}

// IsZero reports whether the button has no label.
func (b Button) IsZero() bool {
	return b.Label == ""
}

func (b Button) render(class string) g.Node {
	if b.IsZero() {
		return nil
	}
	href := b.Href
	if href == "" {
		href = "#"
	}
	return h.A(h.Href(href), h.Class(class), g.Text(b.Label))
}

const (
	primaryButtonClass   = "inline-flex items-center rounded-md bg-primary px-6 py-3 font-semibold text-primary-foreground"
	secondaryButtonClass = "inline-flex items-center rounded-md border px-6 py-3 font-semibold"
)

// Class returns the resolved class of the named prop, or "" when the section has no such
// prop.
func (r Resolution) Class(name string) string {
	for _, prop := range r.Props {
		if prop.Name == name {
			return prop.Class
		}
	}
	return ""
}

func optionalText(el func(...g.Node) g.Node, class, text string) g.Node {
	if text == "" {
		return nil
	}
	return el(h.Class(class), g.Text(text))
}

// RichText is a markdown prop. Raw HTML inside the markdown is dropped.
type RichText string

func (r RichText) render(class string) g.Node {
	if strings.TrimSpace(string(r)) == "" {
		return nil
	}
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.SkipHTML})
	out := markdown.ToHTML([]byte(r), parser.NewWithExtensions(parser.CommonExtensions), renderer)
	return h.Div(h.Class(class), g.Raw(string(out)))
}
