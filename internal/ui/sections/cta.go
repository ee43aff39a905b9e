package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/studio/internal/ui/classes"
	"github.com/alexisbeaulieu97/studio/internal/ui/responsive"
	"github.com/alexisbeaulieu97/studio/internal/ui/tokens"
)

// CTAType is the section type name of CTA.
const CTAType = "cta"

// CTA is a boxed call to action.
type CTA struct {
	Base `yaml:",inline"`

	Headline    string   `yaml:"headline,omitempty"`
	Description RichText `yaml:"description,omitempty"`
	Button      Button   `yaml:"button,omitempty"`

	PaddingY responsive.Value[tokens.Spacing] `yaml:"paddingY,omitempty"`
	Align    responsive.Value[tokens.Align]   `yaml:"align,omitempty"`
	Radius   responsive.Value[tokens.Radius]  `yaml:"radius,omitempty"`
	MaxWidth responsive.Value[tokens.Width]   `yaml:"maxWidth,omitempty"`
}

func (s *CTA) Type() string { return CTAType }

func (s *CTA) Resolve(ctx RenderContext) Resolution {
	outer := []PropTokens{
		propTokens("paddingY", "padding_y", orDefault(s.PaddingY, tokens.SpacingMD), ctx.Theme.PaddingY),
	}
	inner := []PropTokens{
		propTokens("align", "text_align", orDefault(s.Align, tokens.AlignCenter), ctx.Theme.TextAlign),
		propTokens("radius", "radius", orDefault(s.Radius, tokens.RadiusLG), ctx.Theme.Radius),
		propTokens("maxWidth", "max_width", orDefault(s.MaxWidth, tokens.WidthMD), ctx.Theme.MaxWidth),
	}

	return Resolution{
		Type:  CTAType,
		ID:    s.id,
		Root:  s.root(CTAType, classOf(outer), nil),
		Props: append(outer, inner...),
	}
}

func (s *CTA) Render(ctx RenderContext) g.Node {
	res := s.Resolve(ctx)
	log := ctx.Logger.Section(CTAType, s.id)
	s.warnUnknown(log)
	log.With("class", res.Root.Class).Debug("section resolved")

	box := classes.Join("mx-auto bg-muted p-8", res.Class("maxWidth"), res.Class("radius"), res.Class("align"))
	return h.Section(append(rootAttrs(res.Root),
		h.Div(h.Class(box),
			optionalText(h.H2, "text-3xl font-bold", s.Headline),
			s.Description.render("mt-4 opacity-80"),
			g.If(!s.Button.IsZero(), h.Div(h.Class("mt-8"), s.Button.render(primaryButtonClass))),
		),
	)...)
}
