package main

import (
	"fmt"
	"path/filepath"

	"github.com/WhiteCrosstheRiver/manualgen"
	"github.com/WhiteCrosstheRiver/manualgen/build"
	"github.com/WhiteCrosstheRiver/manualgen/fs"
	"github.com/WhiteCrosstheRiver/manualgen/goldmark"
	"github.com/WhiteCrosstheRiver/manualgen/goquery"
	mgslog "github.com/WhiteCrosstheRiver/manualgen/slog"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	opts := goldmark.Options{Style: c.Style, DisableHighlighting: c.NoHighlight}
	if !c.NoHighlight && !goldmark.KnownStyle(c.Style) {
		fmt.Fprintf(deps.Stderr, "warning: unknown highlight style %q, code blocks will not be highlighted\n", c.Style)
		opts.DisableHighlighting = true
	}

	var source manualgen.DocumentSource = fs.NewCollector(c.Dir, c.Overview)
	var renderer manualgen.Renderer = goldmark.NewRenderer(opts)
	if c.Verbose {
		source = mgslog.NewSource(source, deps.Logger)
		renderer = mgslog.NewRenderer(renderer, deps.Logger)
	}

	builder := &build.Builder{
		Source:   source,
		Renderer: renderer,
		Writer:   fs.NewWriter(c.Dir),
		Verifier: goquery.NewVerifier(),
		Title:    c.Title,
		Progress: func(p manualgen.BuildProgress) {
			switch p.Stage {
			case manualgen.StageDiscover:
				fmt.Fprintf(deps.Stdout, "Found %d manual files\n", p.Total)
			case manualgen.StageRender:
				fmt.Fprintf(deps.Stdout, "  rendering: %s (%d/%d)\n", p.Detail, p.Completed, p.Total)
			case manualgen.StageAssemble:
				fmt.Fprintln(deps.Stdout, "Assembling HTML...")
			}
		},
	}

	fmt.Fprintln(deps.Stdout, "Generating manual website...")

	result, err := builder.Build(deps.Ctx)
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		status := fmt.Sprintf("%d bytes", f.Bytes)
		if f.Unchanged {
			status = "unchanged"
		}
		fmt.Fprintf(deps.Stdout, "  wrote %s (%s)\n", f.Path, status)
	}
	if result.Report != nil {
		fmt.Fprintf(deps.Stdout, "  verified %d sections, %d sidebar links\n", result.Report.Sections, result.Report.NavLinks)
	}

	fmt.Fprintf(deps.Stdout, "\nDone! Open %s to view the manual.\n", filepath.Join(c.Dir, build.PageFile))
	return nil
}
