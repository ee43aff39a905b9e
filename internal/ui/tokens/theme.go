package tokens

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/studio/internal/ui/responsive"
	studioerrors "github.com/alexisbeaulieu97/studio/pkg/errors"
)

// Theme bundles every shared table. Themes are values: DefaultTheme and LoadTheme return
// fresh tables, so a caller may adjust its own copy without affecting other renders.
type Theme struct {
	PaddingY    responsive.Table[Spacing]
	PaddingX    responsive.Table[Spacing]
	Gap         responsive.Table[Spacing]
	Radius      responsive.Table[Radius]
	TextAlign   responsive.Table[Align]
	MaxWidth    responsive.Table[Width]
	HeadingSize responsive.Table[HeadingSize]
	Columns     responsive.Table[Columns]
}

// DefaultTheme returns the built-in tables.
func DefaultTheme() Theme {
	return Theme{
		PaddingY:    responsive.TableFromTuples(paddingY),
		PaddingX:    responsive.TableFromTuples(paddingX),
		Gap:         responsive.TableFromTuples(gap),
		Radius:      responsive.TableFromTuples(radius),
		TextAlign:   responsive.TableFromTuples(textAlign),
		MaxWidth:    responsive.TableFromTuples(maxWidth),
		HeadingSize: responsive.TableFromTuples(headingSize),
		Columns:     responsive.TableFromTuples(columns),
	}
}

type namedTable interface {
	view() responsive.Table[string]
	apply(entries map[string]responsive.Triple)
}

type typedTable[K ~string] struct {
	table *responsive.Table[K]
}

func (tt typedTable[K]) view() responsive.Table[string] {
	out := make(responsive.Table[string], len(*tt.table))
	for key, triple := range *tt.table {
		out[string(key)] = triple
	}
	return out
}

func (tt typedTable[K]) apply(entries map[string]responsive.Triple) {
	if *tt.table == nil {
		*tt.table = make(responsive.Table[K], len(entries))
	}
	for key, triple := range entries {
		(*tt.table)[K(key)] = triple
	}
}

// tableNames lists the theme file section names in display order.
var tableNames = []string{
	"padding_y",
	"padding_x",
	"gap",
	"radius",
	"text_align",
	"max_width",
	"heading_size",
	"columns",
}

func (t *Theme) lookup(name string) (namedTable, bool) {
	switch name {
	case "padding_y":
		return typedTable[Spacing]{&t.PaddingY}, true
	case "padding_x":
		return typedTable[Spacing]{&t.PaddingX}, true
	case "gap":
		return typedTable[Spacing]{&t.Gap}, true
	case "radius":
		return typedTable[Radius]{&t.Radius}, true
	case "text_align":
		return typedTable[Align]{&t.TextAlign}, true
	case "max_width":
		return typedTable[Width]{&t.MaxWidth}, true
	case "heading_size":
		return typedTable[HeadingSize]{&t.HeadingSize}, true
	case "columns":
		return typedTable[Columns]{&t.Columns}, true
	default:
		return nil, false
	}
}

// Names returns the table names accepted by Table and by theme files.
func Names() []string {
	return append([]string(nil), tableNames...)
}

// Table returns a string-keyed copy of the named table.
func (t Theme) Table(name string) (responsive.Table[string], bool) {
	table, ok := t.lookup(normalizeName(name))
	if !ok {
		return nil, false
	}
	return table.view(), true
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// LoadTheme reads a TOML or YAML theme file and applies its entries on top of the default
// tables. Each entry is either a [mobile, tablet, desktop] list or a table with
// mobile/tablet/desktop keys:
//
//	[padding_y]
//	md = ["py-10", "md:py-14", "lg:py-20"]
//	xl = { mobile = "py-20", tablet = "md:py-28", desktop = "lg:py-40" }
//
// Sections that do not name a known table are ignored.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, studioerrors.NewThemeError(path, "", err)
	}

	var overrides map[string]map[string]responsive.Triple
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		overrides, err = decodeTOML(path, data)
	case ".yaml", ".yml":
		overrides, err = decodeYAML(path, data)
	default:
		err = studioerrors.NewThemeError(path, "", fmt.Errorf("unsupported theme format %q", filepath.Ext(path)))
	}
	if err != nil {
		return Theme{}, err
	}

	theme := DefaultTheme()
	theme.Apply(overrides)
	return theme, nil
}

// Apply adds or replaces entries of the named tables. Unknown table names are ignored.
func (t *Theme) Apply(overrides map[string]map[string]responsive.Triple) {
	for name, entries := range overrides {
		table, ok := t.lookup(normalizeName(name))
		if !ok {
			continue
		}
		table.apply(entries)
	}
}

func decodeTOML(path string, data []byte) (map[string]map[string]responsive.Triple, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, studioerrors.NewThemeError(path, "", err)
	}

	overrides := make(map[string]map[string]responsive.Triple, len(raw))
	for name, section := range raw {
		if !knownTable(name) {
			continue
		}
		entries, ok := section.(map[string]any)
		if !ok {
			return nil, studioerrors.NewThemeError(path, name, fmt.Errorf("expected a table, got %T", section))
		}
		triples := make(map[string]responsive.Triple, len(entries))
		for key, entry := range entries {
			triple, err := responsive.TripleFrom(entry)
			if err != nil {
				return nil, studioerrors.NewThemeError(path, name, fmt.Errorf("%s: %w", key, err))
			}
			triples[key] = triple
		}
		overrides[name] = triples
	}
	return overrides, nil
}

func decodeYAML(path string, data []byte) (map[string]map[string]responsive.Triple, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, studioerrors.NewThemeError(path, "", err)
	}

	overrides := make(map[string]map[string]responsive.Triple, len(raw))
	for name, node := range raw {
		if !knownTable(name) {
			continue
		}
		var triples map[string]responsive.Triple
		if err := node.Decode(&triples); err != nil {
			return nil, studioerrors.NewThemeError(path, name, err)
		}
		overrides[name] = triples
	}
	return overrides, nil
}

func knownTable(name string) bool {
	return slices.Contains(tableNames, normalizeName(name))
}
