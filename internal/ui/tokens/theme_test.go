package tokens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/studio/internal/ui/responsive"
	studioerrors "github.com/alexisbeaulieu97/studio/pkg/errors"
)

func writeTheme(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefaultPaddingYMatchesBuilderScale(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	require.Equal(t, "py-8 md:py-12 lg:py-16", responsive.Resolve(responsive.Scalar(SpacingMD), theme.PaddingY))
	require.Equal(t, "py-4 lg:py-32", responsive.Resolve(responsive.Responsive(responsive.Overrides[Spacing]{
		Mobile:  responsive.Ptr(SpacingSM),
		Desktop: responsive.Ptr(SpacingXL),
	}), theme.PaddingY))
}

func TestDefaultThemeReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	first := DefaultTheme()
	first.PaddingY[SpacingMD] = responsive.Tokens("x", "y", "z")

	second := DefaultTheme()
	require.Equal(t, "py-8", second.PaddingY[SpacingMD].Mobile)
}

func TestEveryNamedTableIsReachable(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	for _, name := range Names() {
		table, ok := theme.Table(name)
		require.True(t, ok, name)
		require.NotEmpty(t, table, name)
	}

	table, ok := theme.Table("Padding-Y")
	require.True(t, ok)
	require.Equal(t, "md:py-12", table["md"].Tablet)

	_, ok = theme.Table("shadow")
	require.False(t, ok)
}

func TestLoadTheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, theme Theme, err error)
	}{
		{
			name: "toml positional and named entries",
			file: "theme.toml",
			contents: `
[padding_y]
md = ["py-10", "md:py-14", "lg:py-20"]
xxl = { mobile = "py-20", tablet = "md:py-28", desktop = "lg:py-40" }

[columns]
6 = ["grid-cols-2", "md:grid-cols-3", "lg:grid-cols-6"]

[brand]
name = "ignored"
`,
			assert: func(t *testing.T, theme Theme, err error) {
				require.NoError(t, err)
				require.Equal(t, responsive.Tokens("py-10", "md:py-14", "lg:py-20"), theme.PaddingY[SpacingMD])
				require.Equal(t, responsive.Tokens("py-20", "md:py-28", "lg:py-40"), theme.PaddingY["xxl"])
				require.Equal(t, "lg:grid-cols-6", theme.Columns["6"].Desktop)
				// Untouched entries keep their defaults.
				require.Equal(t, "py-4", theme.PaddingY[SpacingSM].Mobile)
			},
		},
		{
			name: "yaml entries",
			file: "theme.yaml",
			contents: `
gap:
  md: [gap-5, md:gap-7, lg:gap-9]
radius:
  pill: {mobile: rounded-3xl, desktop: lg:rounded-full}
meta:
  author: studio
`,
			assert: func(t *testing.T, theme Theme, err error) {
				require.NoError(t, err)
				require.Equal(t, "gap-5 md:gap-7 lg:gap-9", responsive.Resolve(responsive.Scalar(SpacingMD), theme.Gap))
				require.Equal(t, responsive.Tokens("rounded-3xl", "", "lg:rounded-full"), theme.Radius["pill"])
			},
		},
		{
			name:     "toml entry with wrong token type",
			file:     "theme.toml",
			contents: "[gap]\nmd = [1, 2, 3]\n",
			assert: func(t *testing.T, theme Theme, err error) {
				require.Error(t, err)
				var themeErr *studioerrors.ThemeError
				require.ErrorAs(t, err, &themeErr)
				require.Equal(t, "gap", themeErr.Table)
				require.Contains(t, err.Error(), "md")
			},
		},
		{
			name:     "toml section that is not a table",
			file:     "theme.toml",
			contents: "gap = 4\n",
			assert: func(t *testing.T, theme Theme, err error) {
				var themeErr *studioerrors.ThemeError
				require.ErrorAs(t, err, &themeErr)
				require.Contains(t, err.Error(), "expected a table")
			},
		},
		{
			name:     "malformed toml",
			file:     "theme.toml",
			contents: "[padding_y\n",
			assert: func(t *testing.T, theme Theme, err error) {
				var themeErr *studioerrors.ThemeError
				require.ErrorAs(t, err, &themeErr)
				require.Empty(t, themeErr.Table)
			},
		},
		{
			name:     "unsupported extension",
			file:     "theme.json",
			contents: "{}",
			assert: func(t *testing.T, theme Theme, err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "unsupported theme format")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			theme, err := LoadTheme(writeTheme(t, tc.file, tc.contents))
			tc.assert(t, theme, err)
		})
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadTheme(filepath.Join(t.TempDir(), "missing.toml"))
	var themeErr *studioerrors.ThemeError
	require.ErrorAs(t, err, &themeErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExampleThemeLoads(t *testing.T) {
	t.Parallel()

	theme, err := LoadTheme(filepath.Join("..", "..", "..", "examples", "landing", "theme.toml"))
	require.NoError(t, err)
	require.Equal(t, "py-6 md:py-10 lg:py-14", responsive.Resolve(responsive.Scalar(SpacingMD), theme.PaddingY))
	require.Equal(t, "lg:rounded-2xl", theme.Radius[RadiusLG].Desktop)
}
