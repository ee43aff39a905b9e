// Package universal compiles the cross-cutting features every section root supports:
// entrance animation, hover effect, per-breakpoint visibility, spacing overrides and
// identification attributes.
//
// The compiler follows the same tolerance rule as the responsive resolver: an unknown
// preset or effect contributes nothing and every field is independent of the others.
package universal

// AnimationPreset names an entrance animation.
type AnimationPreset string

const (
	AnimationNone       AnimationPreset = "none"
	AnimationFadeIn     AnimationPreset = "fade-in"
	AnimationFadeUp     AnimationPreset = "fade-up"
	AnimationSlideUp    AnimationPreset = "slide-up"
	AnimationSlideDown  AnimationPreset = "slide-down"
	AnimationSlideLeft  AnimationPreset = "slide-left"
	AnimationSlideRight AnimationPreset = "slide-right"
	AnimationZoomIn     AnimationPreset = "zoom-in"
	AnimationBounce     AnimationPreset = "bounce"
)

// AnimationDelay names a start delay, in milliseconds, for the entrance animation.
type AnimationDelay string

const (
	DelayNone AnimationDelay = "none"
	Delay100  AnimationDelay = "100"
	Delay200  AnimationDelay = "200"
	Delay300  AnimationDelay = "300"
	Delay500  AnimationDelay = "500"
	Delay700  AnimationDelay = "700"
	Delay1000 AnimationDelay = "1000"
)

// HoverEffect names the hover-state treatment of a section root.
type HoverEffect string

const (
	HoverNone     HoverEffect = "none"
	HoverLift     HoverEffect = "lift"
	HoverScale    HoverEffect = "scale"
	HoverGlow     HoverEffect = "glow"
	HoverDarken   HoverEffect = "darken"
	HoverBrighten HoverEffect = "brighten"
)

var animationClasses = map[AnimationPreset]string{
	AnimationNone:       "",
	AnimationFadeIn:     "animate-fade-in",
	AnimationFadeUp:     "animate-fade-up",
	AnimationSlideUp:    "animate-slide-up",
	AnimationSlideDown:  "animate-slide-down",
	AnimationSlideLeft:  "animate-slide-left",
	AnimationSlideRight: "animate-slide-right",
	AnimationZoomIn:     "animate-zoom-in",
	AnimationBounce:     "animate-bounce",
}

var delayClasses = map[AnimationDelay]string{
	DelayNone: "",
	Delay100:  "animation-delay-100",
	Delay200:  "animation-delay-200",
	Delay300:  "animation-delay-300",
	Delay500:  "animation-delay-500",
	Delay700:  "animation-delay-700",
	Delay1000: "animation-delay-1000",
}

var hoverClasses = map[HoverEffect]string{
	HoverNone:     "",
	HoverLift:     "transition-transform duration-300 hover:-translate-y-1 hover:shadow-lg",
	HoverScale:    "transition-transform duration-300 hover:scale-105",
	HoverGlow:     "transition-shadow duration-300 hover:shadow-xl",
	HoverDarken:   "transition duration-300 hover:brightness-90",
	HoverBrighten: "transition duration-300 hover:brightness-110",
}

// Visibility pairs hide the root at one tier and restore it at the next.
const (
	hiddenOnMobile  = "hidden md:block"
	hiddenOnTablet  = "md:hidden lg:block"
	hiddenOnDesktop = "lg:hidden"
)

// Valid reports whether p is a known preset.
func (p AnimationPreset) Valid() bool {
	_, ok := animationClasses[p]
	return ok
}

// Valid reports whether d is a known delay.
func (d AnimationDelay) Valid() bool {
	_, ok := delayClasses[d]
	return ok
}

// Valid reports whether h is a known hover effect.
func (h HoverEffect) Valid() bool {
	_, ok := hoverClasses[h]
	return ok
}

// Features is the universal property set shared by every section root. Every field is
// optional; nil numeric fields produce no inline style at all.
type Features struct {
	Animation         AnimationPreset `yaml:"animation,omitempty" json:"animation,omitempty"`
	AnimationDelay    AnimationDelay  `yaml:"animationDelay,omitempty" json:"animationDelay,omitempty"`
	AnimationDuration *float64        `yaml:"animationDuration,omitempty" json:"animationDuration,omitempty"`
	Hover             HoverEffect     `yaml:"hoverEffect,omitempty" json:"hoverEffect,omitempty"`

	HideOnMobile  bool `yaml:"hideOnMobile,omitempty" json:"hideOnMobile,omitempty"`
	HideOnTablet  bool `yaml:"hideOnTablet,omitempty" json:"hideOnTablet,omitempty"`
	HideOnDesktop bool `yaml:"hideOnDesktop,omitempty" json:"hideOnDesktop,omitempty"`

	MarginTop     *float64 `yaml:"marginTop,omitempty" json:"marginTop,omitempty"`
	MarginBottom  *float64 `yaml:"marginBottom,omitempty" json:"marginBottom,omitempty"`
	PaddingTop    *float64 `yaml:"paddingTop,omitempty" json:"paddingTop,omitempty"`
	PaddingBottom *float64 `yaml:"paddingBottom,omitempty" json:"paddingBottom,omitempty"`

	CustomClassName string `yaml:"customClassName,omitempty" json:"customClassName,omitempty"`
	CustomID        string `yaml:"customId,omitempty" json:"customId,omitempty"`
	AriaLabel       string `yaml:"ariaLabel,omitempty" json:"ariaLabel,omitempty"`
}

// Float returns a pointer to v, for filling the optional numeric fields.
func Float(v float64) *float64 {
	return &v
}
