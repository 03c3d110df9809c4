package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/WhiteCrosstheRiver/manualgen"
)

// Ensure Source implements manualgen.DocumentSource at compile time.
var _ manualgen.DocumentSource = (*Source)(nil)

// Source wraps a manualgen.DocumentSource with debug logging of discovery.
type Source struct {
	next   manualgen.DocumentSource
	logger *slog.Logger
}

// NewSource creates a new logging Source.
func NewSource(next manualgen.DocumentSource, logger *slog.Logger) *Source {
	return &Source{next: next, logger: logger}
}

// Documents delegates to the wrapped source and logs the discovery result.
func (s *Source) Documents(ctx context.Context) ([]*manualgen.Document, error) {
	begin := time.Now()
	docs, err := s.next.Documents(ctx)
	s.logger.Debug("document discovery",
		"documents", len(docs),
		"duration", time.Since(begin),
		"failed", err != nil,
	)
	return docs, err
}

// Overview delegates to the wrapped source and logs whether it was found.
func (s *Source) Overview(ctx context.Context) (*manualgen.Document, error) {
	doc, err := s.next.Overview(ctx)
	s.logger.Debug("overview lookup",
		"found", err == nil,
	)
	return doc, err
}
