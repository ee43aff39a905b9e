package sections

import (
	"gopkg.in/yaml.v3"
)

// ImageValue is an image prop. Page exports store it either as a bare URL or as an
// object with url and alt keys.
type ImageValue struct {
	Src  string `yaml:"url,omitempty"`
	Text string `yaml:"alt,omitempty"`
}

// UnmarshalYAML accepts a URL string or a {url, alt} mapping. Anything else leaves the
// image unset.
func (i *ImageValue) UnmarshalYAML(node *yaml.Node) error {
	*i = ImageValue{}

	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!str" {
			i.Src = node.Value
		}
	case yaml.MappingNode:
		type plain ImageValue
		var decoded plain
		if err := node.Decode(&decoded); err != nil {
			return nil
		}
		*i = ImageValue(decoded)
	}
	return nil
}

// URL returns the image URL, or fallback when none is set.
func (i ImageValue) URL(fallback string) string {
	if i.Src == "" {
		return fallback
	}
	return i.Src
}

// Alt returns the alt text, or fallback when none is set.
func (i ImageValue) Alt(fallback string) string {
	if i.Text == "" {
		return fallback
	}
	return i.Text
}

// IsZero reports whether no URL is set.
func (i ImageValue) IsZero() bool {
	return i.Src == ""
}
