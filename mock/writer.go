package mock

import (
	"context"

	"github.com/WhiteCrosstheRiver/manualgen"
)

var _ manualgen.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of manualgen.OutputWriter.
type OutputWriter struct {
	WriteFileFn func(ctx context.Context, name string, data []byte) (manualgen.WriteResult, error)
}

func (w *OutputWriter) WriteFile(ctx context.Context, name string, data []byte) (manualgen.WriteResult, error) {
	return w.WriteFileFn(ctx, name, data)
}
