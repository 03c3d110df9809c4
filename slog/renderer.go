// Package slog provides logging decorators for manualgen services.
package slog

import (
	"log/slog"
	"time"

	"github.com/WhiteCrosstheRiver/manualgen"
)

// Ensure Renderer implements manualgen.Renderer at compile time.
var _ manualgen.Renderer = (*Renderer)(nil)

// Renderer wraps a manualgen.Renderer with debug logging of each conversion.
type Renderer struct {
	next   manualgen.Renderer
	logger *slog.Logger
}

// NewRenderer creates a new logging Renderer.
func NewRenderer(next manualgen.Renderer, logger *slog.Logger) *Renderer {
	return &Renderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the conversion.
func (r *Renderer) Render(markdown string) (string, error) {
	begin := time.Now()
	html, err := r.next.Render(markdown)
	r.logger.Debug("markdown render",
		"input_bytes", len(markdown),
		"output_bytes", len(html),
		"duration", time.Since(begin),
		"failed", err != nil,
	)
	return html, err
}

// HighlightCSS delegates to the wrapped renderer.
func (r *Renderer) HighlightCSS() string {
	return r.next.HighlightCSS()
}
