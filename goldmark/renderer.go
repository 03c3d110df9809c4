// Package goldmark converts Markdown to HTML using the goldmark engine with
// chroma-based syntax highlighting.
package goldmark

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/WhiteCrosstheRiver/manualgen"
)

// Ensure Renderer implements manualgen.Renderer at compile time.
var _ manualgen.Renderer = (*Renderer)(nil)

// Options configure a Renderer.
type Options struct {
	// Style is the chroma style name used for code highlighting.
	Style string

	// DisableHighlighting renders code blocks without syntax colors.
	DisableHighlighting bool
}

// Renderer converts Markdown to HTML fragments. It enables tables,
// strikethrough, autolinks, fenced code blocks, and hard line breaks, and
// assigns heading IDs from the domain slug rules. One Renderer instance
// keeps heading anchors unique across every document it renders, so a single
// instance must be used per assembled page.
type Renderer struct {
	md    goldmark.Markdown
	ids   *idGenerator
	style *chroma.Style
}

// NewRenderer creates a Renderer. Highlighted code is emitted with chroma
// CSS classes; the matching stylesheet comes from HighlightCSS.
func NewRenderer(opts Options) *Renderer {
	exts := []goldmark.Extender{
		extension.Table,
		extension.Strikethrough,
		extension.Linkify,
	}

	var style *chroma.Style
	if !opts.DisableHighlighting {
		style = styles.Get(opts.Style)
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(opts.Style),
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithUnsafe()),
	)

	return &Renderer{md: md, ids: newIDGenerator(), style: style}
}

// Render transforms Markdown into an HTML fragment. Empty input yields an
// empty fragment rather than an error, so blank manual files still get
// their section and sidebar entry.
func (r *Renderer) Render(markdown string) (string, error) {
	ctx := parser.NewContext(parser.WithIDs(r.ids))

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf, parser.WithContext(ctx)); err != nil {
		return "", manualgen.Errorf(manualgen.EINTERNAL, "markdown conversion failed: %v", err)
	}

	return buf.String(), nil
}

// HighlightCSS returns the chroma stylesheet for the configured style.
// Returns an empty string when highlighting is disabled.
func (r *Renderer) HighlightCSS() string {
	if r.style == nil {
		return ""
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, r.style); err != nil {
		return ""
	}
	return buf.String()
}

// KnownStyle reports whether name is a registered chroma style. Callers can
// use it to degrade gracefully to unhighlighted code blocks instead of
// silently rendering with the fallback style.
func KnownStyle(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}
