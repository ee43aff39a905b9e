package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/studio/internal/ui/sections"
	studioerrors "github.com/alexisbeaulieu97/studio/pkg/errors"
)

const validPage = `version: "1.0.0"
title: Launch
lang: en-GB
stylesheets: [/site.css]
sections:
  - type: hero
    id: intro
    props:
      headline: Ship faster
      paddingY: {mobile: sm, desktop: xl}
  - type: cta
    id: signup
    headline: Inline props
    animation: fade-in
`

func TestParsePage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, page *Page, err error)
	}{
		{
			name:     "valid page is parsed",
			contents: validPage,
			assert: func(t *testing.T, page *Page, err error) {
				require.NoError(t, err)
				require.Equal(t, "Launch", page.Title)
				require.Len(t, page.Sections, 2)
				require.Equal(t, "intro", page.Sections[0].ID)
				require.Equal(t, 6, page.Sections[0].Line)
				require.Equal(t, "en-GB", page.Document().Lang)
			},
		},
		{
			name: "json export loads as yaml",
			contents: `{"version": "2.1.0", "title": "JSON",
 "sections": [{"type": "pricing", "id": "plans", "props": {"columns": 2}}]}`,
			assert: func(t *testing.T, page *Page, err error) {
				require.NoError(t, err)
				require.Equal(t, "pricing", page.Sections[0].Type)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: "version: \"1.0.0\"\ntitle: Broken\nsections:\n  - type: hero\n    id: [a\n",
			assert: func(t *testing.T, page *Page, err error) {
				var parseErr *studioerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "type mismatch returns parse error",
			contents: "version: [1, 0]\ntitle: Broken\n",
			assert: func(t *testing.T, page *Page, err error) {
				var parseErr *studioerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Error(), "cannot unmarshal")
			},
		},
		{
			name:     "missing sections",
			contents: "version: \"1.0.0\"\ntitle: Empty\n",
			assert: func(t *testing.T, page *Page, err error) {
				var validationErr *studioerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "sections", validationErr.Field)
			},
		},
		{
			name:     "version must be major.minor.patch",
			contents: "version: \"beta\"\ntitle: Bad\nsections:\n  - {type: hero, id: a}\n",
			assert: func(t *testing.T, page *Page, err error) {
				var validationErr *studioerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name:     "unknown section type",
			contents: "version: \"1.0.0\"\ntitle: Bad\nsections:\n  - {type: hero, id: a}\n  - {type: carousel, id: b}\n",
			assert: func(t *testing.T, page *Page, err error) {
				var validationErr *studioerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "sections[1].type", validationErr.Field)
				require.Contains(t, validationErr.Message, "carousel")
			},
		},
		{
			name:     "section id format",
			contents: "version: \"1.0.0\"\ntitle: Bad\nsections:\n  - {type: hero, id: Intro Block}\n",
			assert: func(t *testing.T, page *Page, err error) {
				var validationErr *studioerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "sections[0].id", validationErr.Field)
			},
		},
		{
			name:     "duplicate section ids",
			contents: "version: \"1.0.0\"\ntitle: Dup\nsections:\n  - {type: hero, id: a}\n  - {type: cta, id: a}\n",
			assert: func(t *testing.T, page *Page, err error) {
				var validationErr *studioerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "sections[1].id", validationErr.Field)
				require.Contains(t, validationErr.Message, "duplicate")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			page, err := ParsePage(writeTempPage(t, tc.contents))
			tc.assert(t, page, err)
		})
	}
}

func TestParsePageMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParsePage(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *studioerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildDecodesNestedAndInlineProps(t *testing.T) {
	t.Parallel()

	page, err := ParsePage(writeTempPage(t, validPage))
	require.NoError(t, err)

	built, err := page.Build(sections.Default())
	require.NoError(t, err)
	require.Len(t, built, 2)

	ctx := sections.NewRenderContext()
	hero := built[0].Resolve(ctx)
	require.Equal(t, "py-4 lg:py-32", hero.Class("paddingY"))

	cta := built[1].Resolve(ctx)
	require.Equal(t, "signup", cta.ID)
	require.Contains(t, cta.Root.Class, "animate-fade-in")
}

func TestBuildReportsSectionErrors(t *testing.T) {
	t.Parallel()

	page, err := ParsePage(writeTempPage(t, `version: "1.0.0"
title: Styles
sections:
  - type: hero
    id: intro
    props:
      style: "color red;"
`))
	require.NoError(t, err)

	_, err = page.Build(sections.Default())
	var sectionErr *studioerrors.SectionError
	require.ErrorAs(t, err, &sectionErr)
	require.Equal(t, "intro", sectionErr.ID)
	require.Contains(t, err.Error(), "sections[0].props (line 4)")
}

func writeTempPage(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestExamplePageBuilds(t *testing.T) {
	t.Parallel()

	page, err := ParsePage(filepath.Join("..", "..", "examples", "landing", "page.yaml"))
	require.NoError(t, err)

	built, err := page.Build(sections.Default())
	require.NoError(t, err)
	require.Len(t, built, 4)

	ctx := sections.NewRenderContext()
	resolved := make(map[string]sections.Resolution, len(built))
	for _, section := range built {
		resolved[section.Type()] = section.Resolve(ctx)
	}
	require.Len(t, resolved, 4)

	hero := resolved["hero"]
	require.Equal(t, "py-4 lg:py-32", hero.Class("paddingY"))
	require.Equal(t, "text-4xl md:text-5xl lg:text-6xl", hero.Class("headingSize"))
	require.Contains(t, strings.Fields(hero.Root.Class), "animate-fade-up")
	require.Contains(t, strings.Fields(hero.Root.Class), "animation-delay-200")
	require.Equal(t, "url('/img/hero.jpg')", hero.Root.Style["background-image"])

	testimonials := resolved["testimonials"]
	require.Equal(t, "grid-cols-1 md:grid-cols-2 lg:grid-cols-3", testimonials.Class("columns"))

	pricing := resolved["pricing"]
	require.Equal(t, "grid-cols-1 md:grid-cols-2 lg:grid-cols-2", pricing.Class("columns"))
	require.Contains(t, strings.Fields(pricing.Root.Class), "hover:-translate-y-1")

	cta := resolved["cta"]
	require.Contains(t, strings.Fields(cta.Root.Class), "hidden")
	require.Equal(t, "#0f172a", cta.Root.Style["background-color"])
}

func TestBuildNestedPropsKeepStyleLiteral(t *testing.T) {
	t.Parallel()

	page, err := ParsePage(writeTempPage(t, `version: "1.0.0"
title: Nested
sections:
  - type: hero
    id: intro
    props:
      paddingY: sm
      hideOnMobile: true
      style: "color: red"
`))
	require.NoError(t, err)

	built, err := page.Build(sections.Default())
	require.NoError(t, err)

	res := built[0].Resolve(sections.NewRenderContext())
	require.Equal(t, "py-4 md:py-6 lg:py-8", res.Class("paddingY"))
	require.Contains(t, res.Root.Class, "hidden md:block")
	require.Equal(t, "red", res.Root.Style["color"])
}
