package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/studio/internal/ui/sections"
	"github.com/alexisbeaulieu97/studio/pkg/diff"
)

type renderOptions struct {
	configPath string
	outputPath string
	watch      bool
	check      bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a page document to HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Page document (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write HTML to this file instead of stdout")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-render whenever the page or theme file changes")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail with a diff instead of writing when --output is out of date")
	cmd.MarkFlagsMutuallyExclusive("watch", "check")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions) error {
	if opts.watch && opts.outputPath == "" {
		return newCommandError("render", "starting watch mode", errors.New("--watch needs --output"), "Pass --output so each render replaces the same file.")
	}

	if opts.check && opts.outputPath == "" {
		return newCommandError("render", "checking output", errors.New("--check needs --output"), "Pass the previously rendered file with --output.")
	}

	if err := renderOnce(cmd, flags, opts); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	ctx, err := newRenderContext(cmd, flags)
	if err != nil {
		return err
	}

	paths := []string{expandPath(opts.configPath)}
	if flags.themePath != "" {
		paths = append(paths, expandPath(flags.themePath))
	}
	ctx.Logger.With("files", paths).Info("watching for changes")

	return watchFiles(cmd.Context(), paths, ctx.Logger, func() error {
		return renderOnce(cmd, flags, opts)
	})
}

func renderOnce(cmd *cobra.Command, flags *rootFlags, opts *renderOptions) error {
	ctx, err := newRenderContext(cmd, flags)
	if err != nil {
		return err
	}

	page, built, err := loadPage("render", opts.configPath)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := sections.WritePage(&buf, ctx, page.Document(), built); err != nil {
		return newCommandError("render", "rendering HTML", err, "This is a bug; please report it.")
	}

	if opts.check {
		return checkOutput(cmd.OutOrStdout(), expandPath(opts.outputPath), buf.Bytes())
	}

	if err := writeOutput(cmd.OutOrStdout(), expandPath(opts.outputPath), buf.Bytes()); err != nil {
		return newCommandError("render", "writing HTML", err, "Check that the output directory exists and is writable.")
	}

	ctx.Logger.WithFields(map[string]any{
		"page":     opts.configPath,
		"sections": len(built),
	}).Info("page rendered")
	return nil
}

// writeOutput writes html to path, or to stdout when path is empty. Terminal output is
// syntax highlighted.
func writeOutput(stdout io.Writer, path string, html []byte) error {
	if path != "" {
		return os.WriteFile(path, html, 0o644)
	}

	if isTerminal(stdout) {
		if err := quick.Highlight(stdout, string(html), "html", "terminal256", "monokai"); err == nil {
			_, err = io.WriteString(stdout, "\n")
			return err
		}
	}
	_, err := stdout.Write(html)
	return err
}

// checkOutput compares html with the file at path and prints a diff when they differ.
func checkOutput(stdout io.Writer, path string, html []byte) error {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return newCommandError("render", "reading previous output", err, "Check the output file permissions.")
	}

	out := diff.Unified(diff.Markup(existing), diff.Markup(html), path, "rendered")
	if out == "" {
		return nil
	}

	fmt.Fprint(stdout, out)
	added, removed := diff.Changed(diff.Markup(existing), diff.Markup(html))
	return newCommandError("render", "checking "+path, fmt.Errorf("output is out of date (+%d -%d lines)", added, removed), "Run 'studio render' without --check to update it.")
}
