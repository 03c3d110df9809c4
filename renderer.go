package manualgen

// Renderer converts Markdown content to an HTML fragment.
// Implementations hide the conversion engine and its syntax highlighting.
type Renderer interface {
	// Render transforms Markdown into an HTML fragment.
	Render(markdown string) (string, error)

	// HighlightCSS returns the stylesheet for highlighted code blocks,
	// suitable for inlining into the page head. Returns an empty string
	// when highlighting is disabled.
	HighlightCSS() string
}
