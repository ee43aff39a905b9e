package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/studio/internal/ui/classes"
	"github.com/alexisbeaulieu97/studio/internal/ui/responsive"
	"github.com/alexisbeaulieu97/studio/internal/ui/tokens"
)

// TestimonialsType is the section type name of Testimonials.
const TestimonialsType = "testimonials"

// Testimonial is one quote card.
type Testimonial struct {
	Quote  string     `yaml:"quote,omitempty"`
	Author string     `yaml:"author,omitempty"`
	Role   string     `yaml:"role,omitempty"`
	Avatar ImageValue `yaml:"avatar,omitempty"`
}

// Testimonials is a grid of quote cards.
type Testimonials struct {
	Base `yaml:",inline"`

	Title string        `yaml:"title,omitempty"`
	Items []Testimonial `yaml:"items,omitempty"`

	PaddingY responsive.Value[tokens.Spacing] `yaml:"paddingY,omitempty"`
	Columns  responsive.Value[tokens.Columns] `yaml:"columns,omitempty"`
	Gap      responsive.Value[tokens.Spacing] `yaml:"gap,omitempty"`
	Radius   responsive.Value[tokens.Radius]  `yaml:"radius,omitempty"`
}

func (s *Testimonials) Type() string { return TestimonialsType }

func (s *Testimonials) Resolve(ctx RenderContext) Resolution {
	outer := []PropTokens{
		propTokens("paddingY", "padding_y", orDefault(s.PaddingY, tokens.SpacingLG), ctx.Theme.PaddingY),
	}
	inner := []PropTokens{
		propTokens("columns", "columns", orDefault(s.Columns, tokens.Columns3), ctx.Theme.Columns),
		propTokens("gap", "gap", orDefault(s.Gap, tokens.SpacingMD), ctx.Theme.Gap),
		propTokens("radius", "radius", orDefault(s.Radius, tokens.RadiusLG), ctx.Theme.Radius),
	}

	return Resolution{
		Type:  TestimonialsType,
		ID:    s.id,
		Root:  s.root(TestimonialsType, classOf(outer), nil),
		Props: append(outer, inner...),
	}
}

func (s *Testimonials) Render(ctx RenderContext) g.Node {
	res := s.Resolve(ctx)
	log := ctx.Logger.Section(TestimonialsType, s.id)
	s.warnUnknown(log)
	log.With("class", res.Root.Class).With("items", len(s.Items)).Debug("section resolved")

	card := classes.Join("border p-6", res.Class("radius"))
	return h.Section(append(rootAttrs(res.Root),
		h.Div(h.Class("mx-auto max-w-7xl px-4"),
			optionalText(h.H2, "mb-12 text-center text-3xl font-bold", s.Title),
			h.Div(h.Class(classes.Join("grid", res.Class("columns"), res.Class("gap"))),
				g.Group(g.Map(s.Items, func(item Testimonial) g.Node {
					return h.Figure(h.Class(card),
						h.BlockQuote(h.Class("text-lg"), g.Text(item.Quote)),
						h.FigCaption(h.Class("mt-4 flex items-center gap-3"),
							g.If(!item.Avatar.IsZero(),
								h.Img(h.Class("h-10 w-10 rounded-full"), h.Src(item.Avatar.URL("")), h.Alt(item.Avatar.Alt(item.Author))),
							),
							h.Div(
								optionalText(h.Span, "block font-semibold", item.Author),
								optionalText(h.Span, "block text-sm opacity-70", item.Role),
							),
						),
					)
				})),
			),
		),
	)...)
}
