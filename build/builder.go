// Package build orchestrates the manual build pipeline: discover documents,
// render Markdown, assemble the single-page site, write the output files,
// and verify the result. The pipeline is a single sequential pass with no
// state kept between runs, so unchanged input produces byte-identical
// output.
package build

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/WhiteCrosstheRiver/manualgen"
)

// Output file names emitted by every build.
const (
	PageFile   = "index.html"
	StyleFile  = "style.css"
	ScriptFile = "script.js"
)

// DefaultTitle is used when no site title is configured.
const DefaultTitle = "User Manual"

// Builder wires the pipeline services together.
type Builder struct {
	Source   manualgen.DocumentSource
	Renderer manualgen.Renderer
	Writer   manualgen.OutputWriter

	// Verifier is optional. When set, the assembled page is checked and a
	// broken sidebar link fails the build.
	Verifier manualgen.PageVerifier

	// Title is the site title shown in the page header.
	Title string

	// Progress is optional. When set it receives build progress events.
	Progress manualgen.BuildProgressFunc
}

// Result summarizes a completed build.
type Result struct {
	// Documents is the number of manual documents, excluding the overview.
	Documents int

	// Files describes the written output files in emission order.
	Files []manualgen.WriteResult

	// Report holds the verification result when a Verifier was configured.
	Report *manualgen.PageReport
}

// Build runs the pipeline once. Any error aborts the run with no partial
// output beyond files already written.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	docs, err := b.Source.Documents(ctx)
	if err != nil {
		return nil, err
	}
	b.report(manualgen.BuildProgress{Stage: manualgen.StageDiscover, Completed: len(docs), Total: len(docs)})

	overview, err := b.Source.Overview(ctx)
	if err != nil {
		if manualgen.ErrorCode(err) != manualgen.ENOTFOUND {
			return nil, err
		}
		// No overview file: fall back to a bare title heading.
		overview = manualgen.ParseDocument("overview", "# "+b.title()+"\n")
	}

	overviewHTML, err := b.render(overview)
	if err != nil {
		return nil, err
	}

	nav := make([]navItem, 0, len(docs))
	sections := make([]sectionItem, 0, len(docs))
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		b.report(manualgen.BuildProgress{
			Stage:     manualgen.StageRender,
			Detail:    doc.Filename,
			Completed: i + 1,
			Total:     len(docs),
		})

		html, err := b.render(doc)
		if err != nil {
			return nil, err
		}

		// Sidebar anchors are positional, not slug-based, so heading slug
		// collisions across documents never break navigation.
		anchor := fmt.Sprintf("section-%d", i)
		nav = append(nav, navItem{Anchor: anchor, Title: doc.Title})
		sections = append(sections, sectionItem{Anchor: anchor, Content: template.HTML(html)})
	}

	b.report(manualgen.BuildProgress{Stage: manualgen.StageAssemble})

	page, err := assemblePage(pageData{
		Title:        b.title(),
		HighlightCSS: template.CSS(b.Renderer.HighlightCSS()),
		Nav:          nav,
		Overview:     template.HTML(overviewHTML),
		Sections:     sections,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{Documents: len(docs)}

	outputs := []struct {
		name string
		data []byte
	}{
		{PageFile, page},
		{StyleFile, styleCSS},
		{ScriptFile, scriptJS},
	}
	for _, out := range outputs {
		b.report(manualgen.BuildProgress{Stage: manualgen.StageWrite, Detail: out.name})

		written, err := b.Writer.WriteFile(ctx, out.name, out.data)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, written)
	}

	if b.Verifier != nil {
		b.report(manualgen.BuildProgress{Stage: manualgen.StageVerify})

		report, err := b.Verifier.Verify(string(page))
		if err != nil {
			return nil, err
		}
		if len(report.BrokenLinks) > 0 {
			return nil, manualgen.Errorf(manualgen.EINTERNAL,
				"assembled page has broken sidebar links: %s", strings.Join(report.BrokenLinks, ", "))
		}
		if want := len(docs) + 1; report.Sections != want {
			return nil, manualgen.Errorf(manualgen.EINTERNAL,
				"assembled page has %d sections, expected %d", report.Sections, want)
		}
		result.Report = report
	}

	return result, nil
}

func (b *Builder) render(doc *manualgen.Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	html, err := b.Renderer.Render(doc.Content)
	if err != nil {
		return "", manualgen.Errorf(manualgen.ErrorCode(err),
			"failed to render %q: %s", doc.Filename, manualgen.ErrorMessage(err))
	}
	return html, nil
}

func (b *Builder) title() string {
	if b.Title != "" {
		return b.Title
	}
	return DefaultTitle
}

func (b *Builder) report(p manualgen.BuildProgress) {
	if b.Progress != nil {
		b.Progress(p)
	}
}
