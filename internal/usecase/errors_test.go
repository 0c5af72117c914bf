package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportErrorKinds(t *testing.T) {
	cause := errors.New("chrome exited")
	err := NewError(KindRender, "pdf render failed", cause)

	assert.EqualError(t, err, "render: pdf render failed: chrome exited")
	assert.ErrorIs(t, err, cause, "cause survives unwrapping")
	assert.True(t, IsKind(err, KindRender))
	assert.False(t, IsKind(err, KindSnapshot))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, IsKind(wrapped, KindRender), "kind is found through wrapping")

	assert.False(t, IsKind(errors.New("plain"), KindRender))
	assert.False(t, IsKind(nil, KindRender))
}

func TestExportErrorWithoutCause(t *testing.T) {
	err := NewError(KindInput, "unsupported format: odt", nil)
	assert.EqualError(t, err, "input: unsupported format: odt")
	assert.Nil(t, errors.Unwrap(err))
}
