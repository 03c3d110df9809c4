// Package mock provides hand-written mocks for manualgen interfaces.
package mock

import (
	"context"

	"github.com/WhiteCrosstheRiver/manualgen"
)

var _ manualgen.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of manualgen.DocumentSource.
type DocumentSource struct {
	DocumentsFn func(ctx context.Context) ([]*manualgen.Document, error)
	OverviewFn  func(ctx context.Context) (*manualgen.Document, error)
}

func (s *DocumentSource) Documents(ctx context.Context) ([]*manualgen.Document, error) {
	return s.DocumentsFn(ctx)
}

func (s *DocumentSource) Overview(ctx context.Context) (*manualgen.Document, error) {
	return s.OverviewFn(ctx)
}
