package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/studio/internal/ui/classes"
	"github.com/alexisbeaulieu97/studio/internal/ui/responsive"
	"github.com/alexisbeaulieu97/studio/internal/ui/style"
	"github.com/alexisbeaulieu97/studio/internal/ui/tokens"
)

// HeroType is the section type name of Hero.
const HeroType = "hero"

// Hero is the full-width page opener.
type Hero struct {
	Base `yaml:",inline"`

	Headline        string     `yaml:"headline,omitempty"`
	Subheadline     string     `yaml:"subheadline,omitempty"`
	PrimaryButton   Button     `yaml:"primaryButton,omitempty"`
	SecondaryButton Button     `yaml:"secondaryButton,omitempty"`
	BackgroundImage ImageValue `yaml:"backgroundImage,omitempty"`

	PaddingY    responsive.Value[tokens.Spacing]     `yaml:"paddingY,omitempty"`
	Align       responsive.Value[tokens.Align]       `yaml:"align,omitempty"`
	HeadingSize responsive.Value[tokens.HeadingSize] `yaml:"headingSize,omitempty"`
	MaxWidth    responsive.Value[tokens.Width]       `yaml:"maxWidth,omitempty"`
}

func (s *Hero) Type() string { return HeroType }

func (s *Hero) Resolve(ctx RenderContext) Resolution {
	outer := []PropTokens{
		propTokens("paddingY", "padding_y", orDefault(s.PaddingY, tokens.SpacingLG), ctx.Theme.PaddingY),
		propTokens("align", "text_align", orDefault(s.Align, tokens.AlignCenter), ctx.Theme.TextAlign),
	}
	inner := []PropTokens{
		propTokens("headingSize", "heading_size", orDefault(s.HeadingSize, tokens.HeadingXL), ctx.Theme.HeadingSize),
		propTokens("maxWidth", "max_width", orDefault(s.MaxWidth, tokens.WidthLG), ctx.Theme.MaxWidth),
	}

	return Resolution{
		Type:  HeroType,
		ID:    s.id,
		Root:  s.root(HeroType, classes.Join("relative overflow-hidden", classOf(outer)), s.background()),
		Props: append(outer, inner...),
	}
}

func (s *Hero) background() style.Map {
	if s.BackgroundImage.IsZero() {
		return nil
	}
	return style.Map{
		"background-image":    style.URL(s.BackgroundImage.URL("")),
		"background-position": "center",
		"background-size":     "cover",
	}
}

func (s *Hero) Render(ctx RenderContext) g.Node {
	res := s.Resolve(ctx)
	log := ctx.Logger.Section(HeroType, s.id)
	s.warnUnknown(log)
	log.With("class", res.Root.Class).Debug("section resolved")

	return h.Section(append(rootAttrs(res.Root),
		h.Div(h.Class(classes.Join("mx-auto px-4", res.Class("maxWidth"))),
			optionalText(h.H1, classes.Join("font-bold tracking-tight", res.Class("headingSize")), s.Headline),
			optionalText(h.P, "mt-6 text-lg opacity-80", s.Subheadline),
			g.If(!s.PrimaryButton.IsZero() || !s.SecondaryButton.IsZero(),
				h.Div(h.Class("mt-10 flex flex-wrap justify-center gap-4"),
					s.PrimaryButton.render(primaryButtonClass),
					s.SecondaryButton.render(secondaryButtonClass),
				),
			),
		),
	)...)
}
