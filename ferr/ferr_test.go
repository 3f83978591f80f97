package ferr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "fatal", KindFatal.String())
	assert.Equal(t, "recovered", KindRecovered.String())
	assert.Equal(t, "argument", KindArgument.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestCodeStringKnown(t *testing.T) {
	assert.Equal(t, "Cannot open resource.", CodeCannotOpenResource.String())
	assert.Equal(t, "Out of memory.", CodeOutOfMemory.String())
}

func TestCodeStringUnrecognizedFallsBackToUnknown(t *testing.T) {
	assert.Equal(t, "unknown error", Code(-1).String())
}

func TestUnknownWrapsRawCodeWithoutColliding(t *testing.T) {
	raw := Unknown(5)
	assert.NotContains(t, codeText, raw)
	assert.Equal(t, "unknown error", raw.String())
}

func TestNewBuildsErrorWithoutCause(t *testing.T) {
	err := New("face.Open", KindFatal, CodeCannotOpenResource)
	require.Error(t, err)
	assert.Nil(t, err.Unwrap())
	assert.Contains(t, err.Error(), "face.Open")
	assert.Contains(t, err.Error(), "Cannot open resource.")
}

func TestWrapCarriesCauseAndUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap("face.OpenMemory", KindFatal, CodeUnknownFileFormat, cause)
	require.Error(t, err)
	assert.Same(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "boom")
}
