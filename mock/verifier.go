package mock

import "github.com/WhiteCrosstheRiver/manualgen"

var _ manualgen.PageVerifier = (*PageVerifier)(nil)

// PageVerifier is a mock implementation of manualgen.PageVerifier.
type PageVerifier struct {
	VerifyFn func(html string) (*manualgen.PageReport, error)
}

func (v *PageVerifier) Verify(html string) (*manualgen.PageReport, error) {
	return v.VerifyFn(html)
}
