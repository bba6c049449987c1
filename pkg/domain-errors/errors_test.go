package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidInput, "Invalid latitude")
	require.Error(t, err)
	assert.Equal(t, "Invalid latitude", err.Error())
	assert.True(t, HasCode(err, CodeInvalidInput))
	assert.False(t, HasCode(err, CodeInvariantViolation))
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, CodeInternal, "failed to publish")

	assert.Equal(t, "failed to publish: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, Is(err, CodeInternal))
}

func TestCodeOf(t *testing.T) {
	t.Run("finds code through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("context: %w", Newf(CodeInvalidInput, "got %d", 3))
		assert.Equal(t, CodeInvalidInput, CodeOf(err))
	})

	t.Run("plain errors have no code", func(t *testing.T) {
		assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
		assert.False(t, HasCode(nil, CodeInternal))
	})
}
