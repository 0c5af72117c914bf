package usecase

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// surfacePNG builds a white raster of the given pixel dimensions, standing in
// for a captured rendering surface.
func surfacePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSnapshotPageCount(t *testing.T) {
	// 794px wide at 210mm page width: 1123px is one page, 2583px scales to
	// roughly 2.3 page heights and needs three pages
	assert.Equal(t, 1, SnapshotPageCount(794, 1123, PageWidthMM))
	assert.Equal(t, 3, SnapshotPageCount(794, 2583, PageWidthMM))
	assert.Equal(t, 1, SnapshotPageCount(794, 100, PageWidthMM))
	assert.Equal(t, 0, SnapshotPageCount(0, 1000, PageWidthMM))
}

func TestAssembleSnapshotPDFSinglePage(t *testing.T) {
	surface := surfacePNG(t, 794, 1000)

	out, err := AssembleSnapshotPDF(surface, PageWidthMM)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output is a pdf")
	assert.Contains(t, string(out), "/Count 1")
}

func TestAssembleSnapshotPDFMultiPage(t *testing.T) {
	surface := surfacePNG(t, 794, 2583)

	out, err := AssembleSnapshotPDF(surface, PageWidthMM)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Contains(t, string(out), "/Count 3", "2.3 page heights paginate into three pages")
}

func TestAssembleSnapshotPDFRejectsBadSurfaces(t *testing.T) {
	_, err := AssembleSnapshotPDF(nil, PageWidthMM)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindSnapshot), "empty surface is a snapshot error")

	_, err = AssembleSnapshotPDF([]byte("not a png"), PageWidthMM)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindSnapshot))
}
