package adgen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/adgen"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := adgen.Errorf(adgen.ENOTFOUND, "run %q not found", "test")

	assert.Equal(t, adgen.ENOTFOUND, adgen.ErrorCode(err))
	assert.Equal(t, "run \"test\" not found", adgen.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("generate brief: %w", adgen.Errorf(adgen.EUNAVAILABLE, "empty response"))

	assert.Equal(t, adgen.EUNAVAILABLE, adgen.ErrorCode(err))
	assert.Equal(t, "empty response", adgen.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, adgen.EINTERNAL, adgen.ErrorCode(err))
	assert.Equal(t, "disk full", adgen.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, adgen.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, adgen.ErrorMessage(nil))
}
