package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/studio/internal/logger"
	"github.com/alexisbeaulieu97/studio/internal/ui/sections"
	"github.com/alexisbeaulieu97/studio/internal/ui/tokens"
)

// newRenderContext builds the logger and theme shared by every command.
func newRenderContext(cmd *cobra.Command, flags *rootFlags) (sections.RenderContext, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return sections.RenderContext{}, newCommandError(cmd.Name(), "creating logger", err, "This is a bug; please report it.")
	}
	log = log.With("command", cmd.Name())

	theme := tokens.DefaultTheme()
	if path := expandPath(flags.themePath); path != "" {
		theme, err = tokens.LoadTheme(path)
		if err != nil {
			return sections.RenderContext{}, newCommandError(cmd.Name(), "loading theme", err, "Check the theme file; entries must be [mobile, tablet, desktop] lists or {mobile, tablet, desktop} tables.")
		}
		log.With("theme", path).Debug("theme loaded")
	}

	return sections.RenderContext{Theme: theme, Logger: log}, nil
}
