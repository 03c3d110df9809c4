package goldmark_test

import (
	"testing"

	"github.com/WhiteCrosstheRiver/manualgen/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders basic markdown", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer(goldmark.Options{Style: "github"})

		out, err := r.Render("Hello **world**.")

		require.NoError(t, err)
		assert.Contains(t, out, "<strong>world</strong>")
	})

	t.Run("renders tables", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer(goldmark.Options{Style: "github"})

		out, err := r.Render("| a | b |\n| --- | --- |\n| 1 | 2 |")

		require.NoError(t, err)
		assert.Contains(t, out, "<table>")
		assert.Contains(t, out, "<td>1</td>")
	})

	t.Run("converts single newlines to line breaks", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer(goldmark.Options{Style: "github"})

		out, err := r.Render("first line\nsecond line")

		require.NoError(t, err)
		assert.Contains(t, out, "<br")
	})

	t.Run("assigns slug-based heading IDs", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer(goldmark.Options{Style: "github"})

		out, err := r.Render("# Getting Started\n\ntext")

		require.NoError(t, err)
		assert.Contains(t, out, `id="getting-started"`)
	})

	t.Run("keeps heading IDs unique across documents", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer(goldmark.Options{Style: "github"})

		first, err := r.Render("# Example")
		require.NoError(t, err)
		second, err := r.Render("# Example")
		require.NoError(t, err)

		assert.Contains(t, first, `id="example"`)
		assert.Contains(t, second, `id="example-1"`)
	})

	t.Run("highlights fenced code blocks with chroma classes", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer(goldmark.Options{Style: "github"})

		out, err := r.Render("```go\nfunc main() {}\n```")

		require.NoError(t, err)
		assert.Contains(t, out, "chroma")
	})

	t.Run("degrades to plain code blocks when highlighting is disabled", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer(goldmark.Options{DisableHighlighting: true})

		out, err := r.Render("```go\nfunc main() {}\n```")

		require.NoError(t, err)
		assert.NotContains(t, out, "chroma")
		assert.Contains(t, out, "<code")
	})

	t.Run("renders empty input as an empty fragment", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer(goldmark.Options{Style: "github"})

		out, err := r.Render("")

		require.NoError(t, err)
		assert.Empty(t, out)

		out, err = r.Render("   \n ")

		require.NoError(t, err)
		assert.NotContains(t, out, "<p>")
	})
}

func TestRenderer_HighlightCSS(t *testing.T) {
	t.Parallel()

	t.Run("returns a stylesheet for the configured style", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer(goldmark.Options{Style: "github"})

		css := r.HighlightCSS()

		assert.Contains(t, css, ".chroma")
	})

	t.Run("returns empty when highlighting is disabled", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer(goldmark.Options{DisableHighlighting: true})

		assert.Empty(t, r.HighlightCSS())
	})

	t.Run("is deterministic across instances", func(t *testing.T) {
		t.Parallel()

		a := goldmark.NewRenderer(goldmark.Options{Style: "github"})
		b := goldmark.NewRenderer(goldmark.Options{Style: "github"})

		assert.Equal(t, a.HighlightCSS(), b.HighlightCSS())
	})
}

func TestKnownStyle(t *testing.T) {
	t.Parallel()

	assert.True(t, goldmark.KnownStyle("github"))
	assert.False(t, goldmark.KnownStyle("no-such-style"))
}
