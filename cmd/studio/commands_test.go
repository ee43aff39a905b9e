package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePage = `version: "1.0.0"
title: Launch
sections:
  - type: hero
    id: intro
    props:
      headline: Ship faster
      paddingY: {mobile: sm, desktop: xl}
      hideOnMobile: true
      customId: top
  - type: pricing
    id: plans
    props:
      columns: 2
      style: "margin-top: 2rem"
      plans:
        - {name: Pro, price: $12, highlighted: true}
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestResolveCommand(t *testing.T) {
	t.Parallel()

	themePath := writeFile(t, "theme.toml", "[padding_y]\nmd = [\"py-1\", \"md:py-2\", \"lg:py-3\"]\n")

	cases := []struct {
		name   string
		args   []string
		assert func(t *testing.T, stdout string, err error)
	}{
		{
			name: "scalar expands to every breakpoint",
			args: []string{"resolve", "--table", "padding_y", "--value", "md"},
			assert: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				require.Equal(t, "py-8 md:py-12 lg:py-16\n", stdout)
			},
		},
		{
			name: "mapping contributes only its breakpoints",
			args: []string{"resolve", "--table", "padding-y", "--value", "{mobile: sm, desktop: xl}"},
			assert: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				require.Equal(t, "py-4 lg:py-32\n", stdout)
			},
		},
		{
			name: "single breakpoint",
			args: []string{"resolve", "--table", "columns", "--value", "3", "--breakpoint", "tablet"},
			assert: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				require.Equal(t, "md:grid-cols-2\n", stdout)
			},
		},
		{
			name: "empty value resolves to nothing",
			args: []string{"resolve", "--table", "gap"},
			assert: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				require.Equal(t, "\n", stdout)
			},
		},
		{
			name: "theme file overrides the default table",
			args: []string{"--theme", themePath, "resolve", "--table", "padding_y", "--value", "md"},
			assert: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				require.Equal(t, "py-1 md:py-2 lg:py-3\n", stdout)
			},
		},
		{
			name: "unknown table",
			args: []string{"resolve", "--table", "shadow", "--value", "md"},
			assert: func(t *testing.T, stdout string, err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "unknown table")
				require.Contains(t, err.Error(), "padding_y")
			},
		},
		{
			name: "unknown breakpoint",
			args: []string{"resolve", "--table", "gap", "--value", "md", "--breakpoint", "watch"},
			assert: func(t *testing.T, stdout string, err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "unknown breakpoint")
			},
		},
		{
			name: "malformed value",
			args: []string{"resolve", "--table", "gap", "--value", "{mobile: sm"},
			assert: func(t *testing.T, stdout string, err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "parsing value")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			stdout, _, err := execute(t, tc.args...)
			tc.assert(t, stdout, err)
		})
	}
}

func TestResolveCommandWarnsAboutMissingKeys(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "resolve", "--table", "gap", "--value", "{mobile: huge, desktop: lg}")
	require.NoError(t, err)
	require.Equal(t, "lg:gap-12\n", stdout)
	require.Contains(t, stderr, "table has no entry for key")
	require.Contains(t, stderr, "mobile=huge")
	require.NotContains(t, stderr, "desktop=lg")

	_, stderr, err = execute(t, "resolve", "--table", "gap", "--value", "md")
	require.NoError(t, err)
	require.Empty(t, stderr)
}

func TestRenderCommandWritesFile(t *testing.T) {
	t.Parallel()

	pagePath := writeFile(t, "page.yaml", samplePage)
	outPath := filepath.Join(t.TempDir(), "index.html")

	stdout, _, err := execute(t, "render", "-c", pagePath, "-o", outPath)
	require.NoError(t, err)
	require.Empty(t, stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	html := string(data)
	require.True(t, strings.HasPrefix(html, "<!doctype html>"))
	require.Contains(t, html, "<title>Launch</title>")
	require.Contains(t, html, `id="top"`)
	require.Contains(t, html, "hidden md:block")
	require.Contains(t, html, "py-4 lg:py-32")
	require.Contains(t, html, `style="margin-top: 2rem"`)
}

func TestRenderCommandVerboseLogsSections(t *testing.T) {
	t.Parallel()

	pagePath := writeFile(t, "page.yaml", samplePage)

	stdout, stderr, err := execute(t, "--verbose", "render", "-c", pagePath)
	require.NoError(t, err)
	require.Contains(t, stdout, `data-component-id="plans"`)
	require.Contains(t, stderr, "section resolved")
	require.Contains(t, stderr, "page rendered")
}

func TestRenderCommandErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		args     func(t *testing.T) []string
		contains string
	}{
		{
			name: "missing page file",
			args: func(t *testing.T) []string {
				return []string{"render", "-c", filepath.Join(t.TempDir(), "missing.yaml")}
			},
			contains: "locating page",
		},
		{
			name: "invalid page",
			args: func(t *testing.T) []string {
				return []string{"render", "-c", writeFile(t, "page.yaml", "version: \"1.0.0\"\ntitle: x\nsections:\n  - {type: footer, id: a}\n")}
			},
			contains: "unknown section type",
		},
		{
			name: "bad style literal",
			args: func(t *testing.T) []string {
				return []string{"render", "-c", writeFile(t, "page.yaml", "version: \"1.0.0\"\ntitle: x\nsections:\n  - {type: cta, id: a, style: \"color red;\"}\n")}
			},
			contains: "building sections",
		},
		{
			name: "bad theme file",
			args: func(t *testing.T) []string {
				return []string{"--theme", writeFile(t, "theme.ini", ""), "render", "-c", writeFile(t, "page.yaml", samplePage)}
			},
			contains: "loading theme",
		},
		{
			name: "config flag is required",
			args: func(t *testing.T) []string {
				return []string{"render"}
			},
			contains: "config",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := execute(t, tc.args(t)...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestInspectCommandJSON(t *testing.T) {
	t.Parallel()

	pagePath := writeFile(t, "page.yaml", samplePage)

	stdout, _, err := execute(t, "inspect", "-c", pagePath, "--json")
	require.NoError(t, err)

	var payload []inspectSection
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Len(t, payload, 2)

	hero := payload[0]
	require.Equal(t, "hero", hero.Type)
	require.Equal(t, "intro", hero.ID)
	require.Contains(t, hero.Class, "hidden md:block")
	require.Equal(t, "paddingY", hero.Props[0].Name)
	require.Equal(t, map[string]string{"mobile": "py-4", "tablet": "", "desktop": "lg:py-32"}, hero.Props[0].Breakpoints)
	require.Contains(t, hero.Attributes, inspectAttribute{Name: "id", Value: "top"})

	pricing := payload[1]
	require.Equal(t, map[string]string{"margin-top": "2rem"}, pricing.Style)
}

func TestInspectCommandText(t *testing.T) {
	t.Parallel()

	pagePath := writeFile(t, "page.yaml", samplePage)

	stdout, _, err := execute(t, "inspect", "-c", pagePath)
	require.NoError(t, err)
	require.Contains(t, stdout, "hero #intro")
	require.Contains(t, stdout, "pricing #plans")
	require.Contains(t, stdout, `attr: data-component-type="hero"`)
	require.Contains(t, stdout, "tablet:  (none)")
	require.NotContains(t, stdout, "\x1b[", "plain output when not writing to a terminal")
}

func TestTablesCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "tables")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "padding_y (6 entries)\n"))
	require.Contains(t, stdout, "columns (4 entries)")

	stdout, _, err = execute(t, "tables", "--table", "radius")
	require.NoError(t, err)
	require.Contains(t, stdout, "full   rounded-full | md:rounded-full | lg:rounded-full")

	_, _, err = execute(t, "tables", "--table", "shadow")
	require.Error(t, err)
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-19"

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, stdout, "Studio 1.2.3")
	require.Contains(t, stdout, "abcdef1")
	require.Contains(t, stdout, "2026-10-19")
}

func TestRenderCheck(t *testing.T) {
	t.Parallel()

	pagePath := writeFile(t, "page.yaml", samplePage)
	outPath := filepath.Join(t.TempDir(), "index.html")

	_, _, err := execute(t, "render", "-c", pagePath, "-o", outPath, "--check")
	require.Error(t, err, "missing output counts as out of date")

	_, _, err = execute(t, "render", "-c", pagePath, "-o", outPath)
	require.NoError(t, err)

	stdout, _, err := execute(t, "render", "-c", pagePath, "-o", outPath, "--check")
	require.NoError(t, err)
	require.Empty(t, stdout)

	changed := strings.Replace(samplePage, "paddingY: {mobile: sm, desktop: xl}", "paddingY: md", 1)
	require.NoError(t, os.WriteFile(pagePath, []byte(changed), 0o600))

	stdout, _, err = execute(t, "render", "-c", pagePath, "-o", outPath, "--check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of date (+1 -1 lines)")
	require.Contains(t, stdout, "py-4 lg:py-32")
	require.Contains(t, stdout, "py-8 md:py-12 lg:py-16")

	_, _, err = execute(t, "render", "-c", pagePath, "--check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--check needs --output")
}
