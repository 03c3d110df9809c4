package manualgen_test

import (
	"testing"

	"github.com/WhiteCrosstheRiver/manualgen"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := manualgen.Errorf(manualgen.ENOTFOUND, "overview file %q not found", "README.md")

	assert.Equal(t, manualgen.ENOTFOUND, manualgen.ErrorCode(err))
	assert.Equal(t, "overview file \"README.md\" not found", manualgen.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, manualgen.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, manualgen.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := assert.AnError

	assert.Equal(t, manualgen.EINTERNAL, manualgen.ErrorCode(err))
	assert.Equal(t, "Internal error.", manualgen.ErrorMessage(err))
}
