package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/studio/internal/ui/responsive"
	"github.com/alexisbeaulieu97/studio/internal/ui/sections"
)

type inspectOptions struct {
	configPath string
	jsonOutput bool
}

func newInspectCmd(flags *rootFlags) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show how each section of a page resolves",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Page document (YAML or JSON)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the resolution as JSON")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runInspect(cmd *cobra.Command, flags *rootFlags, opts *inspectOptions) error {
	ctx, err := newRenderContext(cmd, flags)
	if err != nil {
		return err
	}

	_, built, err := loadPage("inspect", opts.configPath)
	if err != nil {
		return err
	}

	resolutions := make([]sections.Resolution, 0, len(built))
	for _, section := range built {
		resolutions = append(resolutions, section.Resolve(ctx))
	}

	if opts.jsonOutput {
		return renderInspectJSON(cmd.OutOrStdout(), resolutions)
	}
	renderInspectText(cmd.OutOrStdout(), resolutions)
	return nil
}

type inspectAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type inspectProp struct {
	Name        string            `json:"name"`
	Table       string            `json:"table"`
	Class       string            `json:"class"`
	Breakpoints map[string]string `json:"breakpoints"`
}

type inspectSection struct {
	Type       string             `json:"type"`
	ID         string             `json:"id"`
	Class      string             `json:"class"`
	Style      map[string]string  `json:"style"`
	Attributes []inspectAttribute `json:"attributes"`
	Props      []inspectProp      `json:"props"`
}

func renderInspectJSON(w io.Writer, resolutions []sections.Resolution) error {
	payload := make([]inspectSection, 0, len(resolutions))
	for _, res := range resolutions {
		entry := inspectSection{
			Type:       res.Type,
			ID:         res.ID,
			Class:      res.Root.Class,
			Style:      res.Root.Style,
			Attributes: make([]inspectAttribute, 0, len(res.Root.Attributes)),
			Props:      make([]inspectProp, 0, len(res.Props)),
		}
		if entry.Style == nil {
			entry.Style = map[string]string{}
		}
		for _, attr := range res.Root.Attributes {
			entry.Attributes = append(entry.Attributes, inspectAttribute{Name: attr.Name, Value: attr.Value})
		}
		for _, prop := range res.Props {
			perBreakpoint := make(map[string]string, len(prop.Breakpoints))
			for i, bp := range responsive.Breakpoints() {
				perBreakpoint[bp.String()] = prop.Breakpoints[i]
			}
			entry.Props = append(entry.Props, inspectProp{Name: prop.Name, Table: prop.Table, Class: prop.Class, Breakpoints: perBreakpoint})
		}
		payload = append(payload, entry)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderInspectText(w io.Writer, resolutions []sections.Resolution) {
	p := newPainter(w)

	for i, res := range resolutions {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, p.paint(headerStyle, fmt.Sprintf("%s #%s", res.Type, res.ID)))
		fmt.Fprintf(w, "  %s %s\n", p.paint(labelStyle, "class:"), orEmpty(p, res.Root.Class))
		fmt.Fprintf(w, "  %s %s\n", p.paint(labelStyle, "style:"), orEmpty(p, res.Root.Style.String()))
		for _, attr := range res.Root.Attributes {
			fmt.Fprintf(w, "  %s %s=%q\n", p.paint(labelStyle, "attr:"), attr.Name, attr.Value)
		}
		for _, prop := range res.Props {
			fmt.Fprintf(w, "  %s (%s)\n", prop.Name, prop.Table)
			for j, bp := range responsive.Breakpoints() {
				fmt.Fprintf(w, "    %-8s %s\n", bp.String()+":", orEmpty(p, prop.Breakpoints[j]))
			}
		}
	}
}

func orEmpty(p painter, text string) string {
	if text == "" {
		return p.paint(emptyStyle, "(none)")
	}
	return p.paint(classStyle, text)
}
