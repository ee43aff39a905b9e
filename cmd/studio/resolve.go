package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/studio/internal/ui/responsive"
	"github.com/alexisbeaulieu97/studio/internal/ui/tokens"
)

type resolveOptions struct {
	table      string
	value      string
	breakpoint string
}

func newResolveCmd(flags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a responsive value against a token table",
		Example: `  studio resolve --table padding_y --value md
  studio resolve --table gap --value '{mobile: sm, desktop: xl}'
  studio resolve --table columns --value 3 --breakpoint tablet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.table, "table", "", "Token table name (see 'studio tables')")
	cmd.Flags().StringVar(&opts.value, "value", "", "Scalar key or {mobile, tablet, desktop} mapping, in YAML")
	cmd.Flags().StringVar(&opts.breakpoint, "breakpoint", "", "Resolve for a single breakpoint: mobile, tablet or desktop")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func runResolve(cmd *cobra.Command, flags *rootFlags, opts *resolveOptions) error {
	ctx, err := newRenderContext(cmd, flags)
	if err != nil {
		return err
	}

	table, ok := ctx.Theme.Table(opts.table)
	if !ok {
		return newCommandError("resolve", fmt.Sprintf("looking up table %q", opts.table), errors.New("unknown table"),
			fmt.Sprintf("Use one of: %s.", strings.Join(tokens.Names(), ", ")))
	}

	value, err := parseValue(opts.value)
	if err != nil {
		return newCommandError("resolve", "parsing value", err, "Pass a key such as md or a mapping such as '{mobile: sm, desktop: xl}'.")
	}

	for _, key := range missingKeys(value, table) {
		ctx.Logger.With("key", key).Warn("table has no entry for key")
	}

	var class string
	if opts.breakpoint != "" {
		bp, ok := responsive.ParseBreakpoint(opts.breakpoint)
		if !ok {
			return newCommandError("resolve", fmt.Sprintf("parsing breakpoint %q", opts.breakpoint), errors.New("unknown breakpoint"), "Use mobile, tablet or desktop.")
		}
		class = responsive.ResolveAt(value, table, bp)
	} else {
		class = responsive.Resolve(value, table)
	}

	ctx.Logger.WithFields(map[string]any{"table": opts.table, "value": opts.value}).Debugf("resolved %q", class)
	fmt.Fprintln(cmd.OutOrStdout(), class)
	return nil
}

// parseValue reads a responsive value written in YAML. An empty string is an unset value.
func parseValue(raw string) (responsive.Value[string], error) {
	var value responsive.Value[string]
	if strings.TrimSpace(raw) == "" {
		return value, nil
	}
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return value, err
	}
	return value, nil
}

// missingKeys lists the keys of value that table has no entry for. Override keys are
// reported as breakpoint=key.
func missingKeys(value responsive.Value[string], table responsive.Table[string]) []string {
	var missing []string
	if key, ok := value.ScalarValue(); ok && key != "" {
		if _, found := table.Lookup(key); !found {
			missing = append(missing, key)
		}
	}
	if overrides, ok := value.OverrideValues(); ok {
		for _, bp := range responsive.Breakpoints() {
			key := overrides.At(bp)
			if key == nil {
				continue
			}
			if _, found := table.Lookup(*key); !found {
				missing = append(missing, bp.String()+"="+*key)
			}
		}
	}
	return missing
}
