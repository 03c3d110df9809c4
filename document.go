package manualgen

import (
	"context"
	"path/filepath"
	"strings"
)

// Document represents one Markdown manual file. Documents are built during
// the parse phase, read once during page assembly, and never persisted.
type Document struct {
	// Filename is the source file name, used for diagnostics and ordering.
	Filename string `json:"filename"`

	// Title is the first top-level heading in the content, falling back to
	// the filename without its extension.
	Title string `json:"title"`

	// Content is the raw Markdown text.
	Content string `json:"content"`

	// ContentHash fingerprints the raw content, for diagnostics.
	ContentHash string `json:"contentHash"`

	// Position is the zero-based index in discovery order. It determines
	// the document's section anchor on the assembled page.
	Position int `json:"position"`

	// Headings is the ordered heading outline of the content.
	Headings []Heading `json:"headings"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Filename == "" {
		return Errorf(EINVALID, "document filename required")
	}
	return nil
}

// ParseDocument builds a Document record from raw Markdown content. The
// title is the text of the first level-1 heading; a document without one is
// titled after its filename without the extension.
func ParseDocument(filename, content string) *Document {
	title := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	headings := ExtractHeadings(content)
	for _, h := range headings {
		if h.Level == 1 {
			title = h.Text
			break
		}
	}

	return &Document{
		Filename: filename,
		Title:    title,
		Content:  content,
		Headings: headings,
	}
}

// DocumentSource discovers and parses manual documents.
// Implementations hide directory listing and file reading.
type DocumentSource interface {
	// Documents returns all manual documents in discovery order (sorted by
	// filename), excluding the overview document.
	Documents(ctx context.Context) ([]*Document, error)

	// Overview returns the designated overview document.
	// Returns ENOTFOUND if no overview file exists.
	Overview(ctx context.Context) (*Document, error)
}
