// Package tokens provides the shared style token tables used by every section.
//
// Sections used to carry their own literal padding, gap and radius maps; they now resolve
// against one Theme so a table is defined once and can be overridden from a theme file.
package tokens

// Spacing is the spacing scale shared by padding and gap tables.
type Spacing string

const (
	SpacingNone Spacing = "none"
	SpacingXS   Spacing = "xs"
	SpacingSM   Spacing = "sm"
	SpacingMD   Spacing = "md"
	SpacingLG   Spacing = "lg"
	SpacingXL   Spacing = "xl"
)

// Align is a horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Radius is a corner rounding preset.
type Radius string

const (
	RadiusNone Radius = "none"
	RadiusSM   Radius = "sm"
	RadiusMD   Radius = "md"
	RadiusLG   Radius = "lg"
	RadiusXL   Radius = "xl"
	RadiusFull Radius = "full"
)

// Width is a content max-width preset.
type Width string

const (
	WidthSM   Width = "sm"
	WidthMD   Width = "md"
	WidthLG   Width = "lg"
	WidthXL   Width = "xl"
	WidthFull Width = "full"
)

// HeadingSize is a heading scale preset.
type HeadingSize string

const (
	HeadingSM HeadingSize = "sm"
	HeadingMD HeadingSize = "md"
	HeadingLG HeadingSize = "lg"
	HeadingXL HeadingSize = "xl"
)

// Columns is a grid column count. Page exports store it as a string or a number; both
// decode into this type.
type Columns string

const (
	Columns1 Columns = "1"
	Columns2 Columns = "2"
	Columns3 Columns = "3"
	Columns4 Columns = "4"
)

var paddingY = map[Spacing][3]string{
	SpacingNone: {"py-0", "md:py-0", "lg:py-0"},
	SpacingXS:   {"py-2", "md:py-4", "lg:py-6"},
	SpacingSM:   {"py-4", "md:py-6", "lg:py-8"},
	SpacingMD:   {"py-8", "md:py-12", "lg:py-16"},
	SpacingLG:   {"py-12", "md:py-16", "lg:py-24"},
	SpacingXL:   {"py-16", "md:py-24", "lg:py-32"},
}

var paddingX = map[Spacing][3]string{
	SpacingNone: {"px-0", "md:px-0", "lg:px-0"},
	SpacingXS:   {"px-2", "md:px-4", "lg:px-4"},
	SpacingSM:   {"px-4", "md:px-6", "lg:px-8"},
	SpacingMD:   {"px-4", "md:px-8", "lg:px-12"},
	SpacingLG:   {"px-6", "md:px-12", "lg:px-16"},
	SpacingXL:   {"px-8", "md:px-16", "lg:px-24"},
}

var gap = map[Spacing][3]string{
	SpacingNone: {"gap-0", "md:gap-0", "lg:gap-0"},
	SpacingXS:   {"gap-1", "md:gap-2", "lg:gap-2"},
	SpacingSM:   {"gap-2", "md:gap-4", "lg:gap-4"},
	SpacingMD:   {"gap-4", "md:gap-6", "lg:gap-8"},
	SpacingLG:   {"gap-6", "md:gap-8", "lg:gap-12"},
	SpacingXL:   {"gap-8", "md:gap-12", "lg:gap-16"},
}

var radius = map[Radius][3]string{
	RadiusNone: {"rounded-none", "md:rounded-none", "lg:rounded-none"},
	RadiusSM:   {"rounded-sm", "md:rounded-sm", "lg:rounded-sm"},
	RadiusMD:   {"rounded-md", "md:rounded-md", "lg:rounded-md"},
	RadiusLG:   {"rounded-lg", "md:rounded-lg", "lg:rounded-lg"},
	RadiusXL:   {"rounded-xl", "md:rounded-2xl", "lg:rounded-2xl"},
	RadiusFull: {"rounded-full", "md:rounded-full", "lg:rounded-full"},
}

var textAlign = map[Align][3]string{
	AlignLeft:   {"text-left", "md:text-left", "lg:text-left"},
	AlignCenter: {"text-center", "md:text-center", "lg:text-center"},
	AlignRight:  {"text-right", "md:text-right", "lg:text-right"},
}

var maxWidth = map[Width][3]string{
	WidthSM:   {"max-w-xl", "md:max-w-2xl", "lg:max-w-3xl"},
	WidthMD:   {"max-w-2xl", "md:max-w-3xl", "lg:max-w-4xl"},
	WidthLG:   {"max-w-3xl", "md:max-w-5xl", "lg:max-w-6xl"},
	WidthXL:   {"max-w-4xl", "md:max-w-6xl", "lg:max-w-7xl"},
	WidthFull: {"max-w-full", "md:max-w-full", "lg:max-w-full"},
}

var headingSize = map[HeadingSize][3]string{
	HeadingSM: {"text-2xl", "md:text-3xl", "lg:text-3xl"},
	HeadingMD: {"text-3xl", "md:text-4xl", "lg:text-5xl"},
	HeadingLG: {"text-4xl", "md:text-5xl", "lg:text-6xl"},
	HeadingXL: {"text-5xl", "md:text-6xl", "lg:text-7xl"},
}

var columns = map[Columns][3]string{
	Columns1: {"grid-cols-1", "md:grid-cols-1", "lg:grid-cols-1"},
	Columns2: {"grid-cols-1", "md:grid-cols-2", "lg:grid-cols-2"},
	Columns3: {"grid-cols-1", "md:grid-cols-2", "lg:grid-cols-3"},
	Columns4: {"grid-cols-1", "md:grid-cols-2", "lg:grid-cols-4"},
}
