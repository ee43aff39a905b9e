package sections

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Document holds the page-level metadata of a rendered page.
type Document struct {
	Title       string
	Lang        string
	Stylesheets []string
}

// RenderPage wraps the rendered sections in a complete HTML document.
func RenderPage(ctx RenderContext, doc Document, sections []Section) g.Node {
	lang := doc.Lang
	if lang == "" {
		lang = "en"
	}

	return h.Doctype(
		h.HTML(h.Lang(lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(doc.Title)),
				g.Group(g.Map(doc.Stylesheets, func(href string) g.Node {
					return h.Link(h.Rel("stylesheet"), h.Href(href))
				})),
			),
			h.Body(
				h.Main(
					g.Group(g.Map(sections, func(section Section) g.Node {
						return section.Render(ctx)
					})),
				),
			),
		),
	)
}

// WritePage renders the page to w.
func WritePage(w io.Writer, ctx RenderContext, doc Document, sections []Section) error {
	return RenderPage(ctx, doc, sections).Render(w)
}
