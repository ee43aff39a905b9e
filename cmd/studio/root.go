package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose   bool
	themePath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "studio",
		Short:         "Studio renders builder page documents into responsive HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.themePath, "theme", "", "Theme file (TOML or YAML) overriding the default token tables")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newTablesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
