package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererTimeoutFromEnv(t *testing.T) {
	t.Setenv("CHROME_TIMEOUT_SECONDS", "5")
	assert.Equal(t, 5*time.Second, NewChromedpRenderer().timeout)

	t.Setenv("CHROME_TIMEOUT_SECONDS", "not-a-number")
	assert.Equal(t, 60*time.Second, NewChromedpRenderer().timeout)

	t.Setenv("CHROME_TIMEOUT_SECONDS", "-1")
	assert.Equal(t, 60*time.Second, NewChromedpRenderer().timeout)
}

func TestRendererLaunchFailureReleasesAndErrors(t *testing.T) {
	// point the allocator at a binary that does not exist: the call must
	// come back with an error instead of hanging on a half-acquired process
	t.Setenv("CHROME_PATH", "/nonexistent/chrome-binary")
	t.Setenv("CHROME_TIMEOUT_SECONDS", "5")

	r := NewChromedpRenderer()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	out, err := r.RenderHTMLToPDF(ctx, "<html><body>x</body></html>")
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestCapturerRejectsEmptySurface(t *testing.T) {
	c := NewChromedpCapturer()

	out, err := c.CaptureSurface(context.Background(), "   ")
	require.Error(t, err, "an empty surface fails before any process is launched")
	assert.Nil(t, out)
}
