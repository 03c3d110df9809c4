package manualgen

import "context"

// WriteResult describes one written output file.
type WriteResult struct {
	// Path is the full path of the output file.
	Path string

	// Bytes is the size of the generated content.
	Bytes int

	// Unchanged reports that the existing file already had this content and
	// the write was skipped.
	Unchanged bool
}

// OutputWriter persists generated site files. Existing files of the same
// name are overwritten without confirmation.
type OutputWriter interface {
	WriteFile(ctx context.Context, name string, data []byte) (WriteResult, error)
}
