// Package responsive resolves breakpoint-aware configuration values into style tokens.
//
// # Overview
//
// Every visual knob a section exposes (padding, gap, radius, alignment, ...) is configured
// with a [Value]: either a single scalar that applies everywhere, or a per-breakpoint
// override record. A [Table] maps each scalar to a [Triple] of class tokens, one per
// breakpoint, already scoped with the styling system's responsive prefixes:
//
//	paddingY := responsive.Table[string]{
//		"sm": responsive.Tokens("py-4", "md:py-6", "lg:py-8"),
//		"md": responsive.Tokens("py-8", "md:py-12", "lg:py-16"),
//	}
//
//	responsive.Resolve(responsive.Scalar("md"), paddingY)
//	// "py-8 md:py-12 lg:py-16"
//
//	responsive.Resolve(responsive.Responsive(responsive.Overrides[string]{
//		Mobile: responsive.Ptr("sm"),
//	}), paddingY)
//	// "py-4"
//
// A scalar expands to all three tokens so the prefixes override at the right width; an
// override record only contributes the token of the breakpoints it names.
//
// # Tolerance
//
// Resolution never fails. An absent value, a zero scalar, an unknown scalar or an unknown
// breakpoint key all contribute nothing, so one misconfigured knob cannot break a page.
//
// # Tables
//
// Table entries are always stored as a [Triple]. The positional form used by older page
// exports ([3]string or a YAML sequence) is normalized once, when the table is built, so
// resolution itself only distinguishes scalar values from override records.
package responsive
