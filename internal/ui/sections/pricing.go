package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/studio/internal/ui/classes"
	"github.com/alexisbeaulieu97/studio/internal/ui/responsive"
	"github.com/alexisbeaulieu97/studio/internal/ui/tokens"
)

// PricingType is the section type name of Pricing.
const PricingType = "pricing"

// Plan is one pricing tier.
type Plan struct {
	Name        string   `yaml:"name,omitempty"`
	Price       string   `yaml:"price,omitempty"`
	Period      string   `yaml:"period,omitempty"`
	Features    []string `yaml:"features,omitempty"`
	Button      Button   `yaml:"button,omitempty"`
	Highlighted bool     `yaml:"highlighted,omitempty"`
}

// Pricing is a grid of plan cards.
type Pricing struct {
	Base `yaml:",inline"`

	Title    string `yaml:"title,omitempty"`
	Subtitle string `yaml:"subtitle,omitempty"`
	Plans    []Plan `yaml:"plans,omitempty"`

	PaddingY responsive.Value[tokens.Spacing] `yaml:"paddingY,omitempty"`
	PaddingX responsive.Value[tokens.Spacing] `yaml:"paddingX,omitempty"`
	Columns  responsive.Value[tokens.Columns] `yaml:"columns,omitempty"`
	Gap      responsive.Value[tokens.Spacing] `yaml:"gap,omitempty"`
	Radius   responsive.Value[tokens.Radius]  `yaml:"radius,omitempty"`
}

func (s *Pricing) Type() string { return PricingType }

func (s *Pricing) Resolve(ctx RenderContext) Resolution {
	outer := []PropTokens{
		propTokens("paddingY", "padding_y", orDefault(s.PaddingY, tokens.SpacingLG), ctx.Theme.PaddingY),
		propTokens("paddingX", "padding_x", orDefault(s.PaddingX, tokens.SpacingMD), ctx.Theme.PaddingX),
	}
	inner := []PropTokens{
		propTokens("columns", "columns", orDefault(s.Columns, tokens.Columns3), ctx.Theme.Columns),
		propTokens("gap", "gap", orDefault(s.Gap, tokens.SpacingLG), ctx.Theme.Gap),
		propTokens("radius", "radius", orDefault(s.Radius, tokens.RadiusXL), ctx.Theme.Radius),
	}

	return Resolution{
		Type:  PricingType,
		ID:    s.id,
		Root:  s.root(PricingType, classOf(outer), nil),
		Props: append(outer, inner...),
	}
}

func (s *Pricing) Render(ctx RenderContext) g.Node {
	res := s.Resolve(ctx)
	log := ctx.Logger.Section(PricingType, s.id)
	s.warnUnknown(log)
	log.With("class", res.Root.Class).With("plans", len(s.Plans)).Debug("section resolved")

	return h.Section(append(rootAttrs(res.Root),
		h.Div(h.Class("mx-auto max-w-7xl"),
			g.If(s.Title != "" || s.Subtitle != "",
				h.Div(h.Class("mb-12 text-center"),
					optionalText(h.H2, "text-3xl font-bold", s.Title),
					optionalText(h.P, "mt-4 opacity-80", s.Subtitle),
				),
			),
			h.Div(h.Class(classes.Join("grid", res.Class("columns"), res.Class("gap"))),
				g.Group(g.Map(s.Plans, func(plan Plan) g.Node {
					return s.renderPlan(plan, res.Class("radius"))
				})),
			),
		),
	)...)
}

func (s *Pricing) renderPlan(plan Plan, radius string) g.Node {
	card := classes.Merge(
		"flex flex-col border p-8",
		radius,
		classes.If(plan.Highlighted, "border-primary shadow-lg"),
	)
	buttonClass := secondaryButtonClass
	if plan.Highlighted {
		buttonClass = primaryButtonClass
	}

	return h.Div(h.Class(card),
		optionalText(h.H3, "text-xl font-semibold", plan.Name),
		h.P(h.Class("mt-4"),
			optionalText(h.Span, "text-4xl font-bold", plan.Price),
			optionalText(h.Span, "ml-1 opacity-70", plan.Period),
		),
		g.If(len(plan.Features) > 0,
			h.Ul(h.Class("mt-6 flex-1 space-y-2"),
				g.Group(g.Map(plan.Features, func(feature string) g.Node {
					return h.Li(g.Text(feature))
				})),
			),
		),
		g.If(!plan.Button.IsZero(), h.Div(h.Class("mt-8"), plan.Button.render(buttonClass))),
	)
}
