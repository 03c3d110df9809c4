package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/WhiteCrosstheRiver/manualgen"
)

// Ensure Writer implements manualgen.OutputWriter at compile time.
var _ manualgen.OutputWriter = (*Writer)(nil)

// Writer writes generated site files into a directory, overwriting existing
// files of the same name without confirmation.
type Writer struct {
	dir string
}

// NewWriter creates a new Writer that writes into dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteFile writes data to name inside the output directory. When the
// existing file already holds identical content the write is skipped and the
// result reports Unchanged, which keeps repeated builds byte-identical
// without touching file modification times.
func (w *Writer) WriteFile(ctx context.Context, name string, data []byte) (manualgen.WriteResult, error) {
	if err := ctx.Err(); err != nil {
		return manualgen.WriteResult{}, err
	}

	path := filepath.Join(w.dir, name)
	result := manualgen.WriteResult{Path: path, Bytes: len(data)}

	if existing, err := os.ReadFile(path); err == nil {
		if len(existing) == len(data) && contentHash(existing) == contentHash(data) && bytes.Equal(existing, data) {
			result.Unchanged = true
			return result, nil
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return result, manualgen.Errorf(manualgen.EINTERNAL, "failed to write %q: %v", path, err)
	}

	return result, nil
}

// contentHash fingerprints content using xxhash.
func contentHash(content []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(content))
}
