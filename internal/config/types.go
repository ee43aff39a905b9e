package config

import (
	"gopkg.in/yaml.v3"
)

// Page is a page document as exported by the builder.
type Page struct {
	Version     string          `yaml:"version" validate:"required,semver"`
	Title       string          `yaml:"title" validate:"required,min=1,max=200"`
	Lang        string          `yaml:"lang,omitempty" validate:"omitempty,bcp47_language_tag"`
	Description string          `yaml:"description,omitempty"`
	Stylesheets []string        `yaml:"stylesheets,omitempty" validate:"omitempty,dive,required"`
	Sections    []SectionConfig `yaml:"sections" validate:"required,min=1,dive"`
}

// SectionConfig is one entry of the page's section list. Props holds the raw prop object
// and is decoded by the section registry.
type SectionConfig struct {
	Type  string    `yaml:"type" validate:"required,section_type"`
	ID    string    `yaml:"id" validate:"required,component_id"`
	Props yaml.Node `yaml:"props,omitempty" validate:"-"`
	Line  int       `yaml:"-" validate:"-"`
}

// UnmarshalYAML reads type and id, and keeps the prop object undecoded. Props may be nested
// under a props key or written inline next to type and id.
func (s *SectionConfig) UnmarshalYAML(value *yaml.Node) error {
	type baseSection struct {
		Type  string     `yaml:"type"`
		ID    string     `yaml:"id"`
		Props yaml.Node `yaml:"props"`
	}

	var base baseSection
	if err := value.Decode(&base); err != nil {
		return err
	}

	s.Type = base.Type
	s.ID = base.ID
	s.Line = value.Line
	if base.Props.Kind != 0 {
		s.Props = base.Props
	} else {
		s.Props = *value
	}
	return nil
}
