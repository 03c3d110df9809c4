// Package fs provides file-based discovery of manual documents and writing
// of generated site files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/WhiteCrosstheRiver/manualgen"
)

// Ensure Collector implements manualgen.DocumentSource at compile time.
var _ manualgen.DocumentSource = (*Collector)(nil)

// Collector discovers and parses manual documents from a directory.
type Collector struct {
	dir      string
	overview string
}

// NewCollector creates a Collector reading Markdown files from dir.
// overview is the filename of the overview document, which is excluded from
// Documents and returned by Overview instead.
func NewCollector(dir, overview string) *Collector {
	return &Collector{dir: dir, overview: overview}
}

// Documents returns parsed manual documents sorted by filename, excluding
// the overview file. A missing directory returns ENOTFOUND; an unreadable
// file aborts with no partial result.
func (c *Collector) Documents(ctx context.Context) ([]*manualgen.Document, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, manualgen.Errorf(manualgen.ENOTFOUND, "manual directory %q not found", c.dir)
		}
		return nil, manualgen.Errorf(manualgen.EINTERNAL, "failed to read manual directory %q: %v", c.dir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == c.overview {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), ".md") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	docs := make([]*manualgen.Document, 0, len(names))
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := c.parse(name)
		if err != nil {
			return nil, err
		}
		doc.Position = i
		docs = append(docs, doc)
	}

	return docs, nil
}

// Overview returns the parsed overview document.
// Returns ENOTFOUND if the overview file does not exist.
func (c *Collector) Overview(ctx context.Context) (*manualgen.Document, error) {
	if _, err := os.Stat(filepath.Join(c.dir, c.overview)); os.IsNotExist(err) {
		return nil, manualgen.Errorf(manualgen.ENOTFOUND, "overview file %q not found", c.overview)
	}
	return c.parse(c.overview)
}

func (c *Collector) parse(name string) (*manualgen.Document, error) {
	raw, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		return nil, manualgen.Errorf(manualgen.EINTERNAL, "failed to read %q: %v", name, err)
	}

	doc := manualgen.ParseDocument(name, string(raw))
	doc.ContentHash = contentHash(raw)
	return doc, nil
}
