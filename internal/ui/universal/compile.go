package universal

import (
	"github.com/alexisbeaulieu97/studio/internal/ui/classes"
	"github.com/alexisbeaulieu97/studio/internal/ui/style"
)

// Marker identifies a rendered section for downstream tooling.
type Marker struct {
	Type string
	ID   string
}

// Attribute is a single passthrough attribute of the section root.
type Attribute struct {
	Name  string
	Value string
}

// Root carries what the section itself contributes to its root element.
type Root struct {
	ClassName string
	Style     style.Map
	Marker    Marker
}

// Result is the compiled presentation of a section root.
type Result struct {
	Class      string
	Style      style.Map
	Attributes []Attribute
}

// Compile bundles Classes, Styles and Attributes for a section root.
func Compile(f Features, root Root) Result {
	return Result{
		Class:      Classes(f, root.ClassName),
		Style:      Styles(f, root.Style),
		Attributes: Attributes(f, root.Marker),
	}
}

// Classes returns the universal class tokens of f followed by its custom class name and the
// explicit className, de-duplicated. The delay only applies together with a known preset.
func Classes(f Features, className string) string {
	var animation, delay string
	if animation = animationClasses[f.Animation]; animation != "" {
		delay = delayClasses[f.AnimationDelay]
	}

	return classes.Merge(
		animation,
		delay,
		hoverClasses[f.Hover],
		classes.If(f.HideOnMobile, hiddenOnMobile),
		classes.If(f.HideOnTablet, hiddenOnTablet),
		classes.If(f.HideOnDesktop, hiddenOnDesktop),
		f.CustomClassName,
		className,
	)
}

// Styles returns the inline styles computed from the numeric fields of f, with override
// applied last. A nil field adds no property.
func Styles(f Features, override style.Map) style.Map {
	computed := style.Map{}
	if f.AnimationDuration != nil {
		computed["animation-duration"] = style.Ms(*f.AnimationDuration)
	}
	if f.MarginTop != nil {
		computed["margin-top"] = style.Px(*f.MarginTop)
	}
	if f.MarginBottom != nil {
		computed["margin-bottom"] = style.Px(*f.MarginBottom)
	}
	if f.PaddingTop != nil {
		computed["padding-top"] = style.Px(*f.PaddingTop)
	}
	if f.PaddingBottom != nil {
		computed["padding-bottom"] = style.Px(*f.PaddingBottom)
	}
	return style.Merge(computed, override)
}

// Attributes returns the passthrough attributes of the root: id, aria-label and each data
// marker, in that order, when its value is non-empty.
func Attributes(f Features, marker Marker) []Attribute {
	attrs := make([]Attribute, 0, 4)
	if f.CustomID != "" {
		attrs = append(attrs, Attribute{Name: "id", Value: f.CustomID})
	}
	if f.AriaLabel != "" {
		attrs = append(attrs, Attribute{Name: "aria-label", Value: f.AriaLabel})
	}
	if marker.Type != "" {
		attrs = append(attrs, Attribute{Name: "data-component-type", Value: marker.Type})
	}
	if marker.ID != "" {
		attrs = append(attrs, Attribute{Name: "data-component-id", Value: marker.ID})
	}
	return attrs
}
