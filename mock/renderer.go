package mock

import "github.com/WhiteCrosstheRiver/manualgen"

var _ manualgen.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of manualgen.Renderer.
type Renderer struct {
	RenderFn       func(markdown string) (string, error)
	HighlightCSSFn func() string
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}

func (r *Renderer) HighlightCSS() string {
	if r.HighlightCSSFn == nil {
		return ""
	}
	return r.HighlightCSSFn()
}
