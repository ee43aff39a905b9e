package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/studio/internal/ui/sections"
	studioerrors "github.com/alexisbeaulieu97/studio/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParsePage loads a page document from disk and validates it. JSON exports are valid YAML
// and load the same way.
func ParsePage(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, studioerrors.NewParseError(path, 0, err)
	}
	return parsePage(path, data)
}

func parsePage(path string, data []byte) (*Page, error) {
	var page Page
	if err := yaml.Unmarshal(data, &page); err != nil {
		return nil, studioerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidatePage(&page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Build decodes every section of the page with reg, in page order.
func (p *Page) Build(reg *sections.Registry) ([]sections.Section, error) {
	built := make([]sections.Section, 0, len(p.Sections))
	for i := range p.Sections {
		cfg := &p.Sections[i]
		section, err := reg.Decode(cfg.Type, cfg.ID, &cfg.Props)
		if err != nil {
			return nil, fmt.Errorf("%s (line %d): %w", fieldForSection(i, "props"), cfg.Line, err)
		}
		built = append(built, section)
	}
	return built, nil
}

// Document returns the page-level metadata used when rendering the page.
func (p *Page) Document() sections.Document {
	return sections.Document{
		Title:       p.Title,
		Lang:        p.Lang,
		Stylesheets: append([]string(nil), p.Stylesheets...),
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
