package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/studio/internal/ui/tokens"
)

type tablesOptions struct {
	table string
}

func newTablesCmd(flags *rootFlags) *cobra.Command {
	opts := &tablesOptions{}

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List token tables, or the entries of one table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTables(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.table, "table", "", "Show the entries of this table")

	return cmd
}

func runTables(cmd *cobra.Command, flags *rootFlags, opts *tablesOptions) error {
	ctx, err := newRenderContext(cmd, flags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := newPainter(out)

	if opts.table == "" {
		for _, name := range tokens.Names() {
			table, _ := ctx.Theme.Table(name)
			fmt.Fprintf(out, "%s %s\n", p.paint(headerStyle, name), p.paint(labelStyle, fmt.Sprintf("(%d entries)", len(table))))
		}
		return nil
	}

	table, ok := ctx.Theme.Table(opts.table)
	if !ok {
		return newCommandError("list tables", fmt.Sprintf("looking up table %q", opts.table), errors.New("unknown table"),
			fmt.Sprintf("Use one of: %s.", strings.Join(tokens.Names(), ", ")))
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		triple := table[key]
		fmt.Fprintf(out, "%-6s %s | %s | %s\n", p.paint(headerStyle, key),
			orEmpty(p, triple.Mobile), orEmpty(p, triple.Tablet), orEmpty(p, triple.Desktop))
	}
	return nil
}
