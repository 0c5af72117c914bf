package usecase

import (
	"bytes"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

// A4 page geometry in millimeters.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// AssembleSnapshotPDF slices one tall raster of the rendered surface into
// page-height bands. The full image is placed on page 1 at offset 0; each
// additional page places the same image shifted up by one page height, so
// every page exposes a different vertical band.
//
// TODO: band slicing can cut a visual block across a page boundary; re-layout
// per block would need element heights from the capture step.
func AssembleSnapshotPDF(surface []byte, pageWidthMM float64) ([]byte, error) {
	if len(surface) == 0 {
		return nil, NewError(KindSnapshot, "snapshot surface is empty", nil)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(surface))
	if err != nil {
		return nil, NewError(KindSnapshot, "snapshot surface is not a valid png", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, NewError(KindSnapshot, "snapshot surface has zero area", nil)
	}

	imgHeight := float64(cfg.Height) * pageWidthMM / float64(cfg.Width)

	pdf := gofpdf.New("P", "mm", "A4", "")
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("surface", opts, bytes.NewReader(surface))

	pdf.AddPage()
	pdf.ImageOptions("surface", 0, 0, pageWidthMM, imgHeight, false, opts, 0, "")

	position := imgHeight
	offset := 0.0
	for position >= PageHeightMM {
		pdf.AddPage()
		offset -= PageHeightMM
		pdf.ImageOptions("surface", 0, offset, pageWidthMM, imgHeight, false, opts, 0, "")
		position -= PageHeightMM
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, NewError(KindSnapshot, "snapshot pdf assembly failed", err)
	}
	return buf.Bytes(), nil
}

// SnapshotPageCount returns how many pages a raster of the given pixel
// dimensions paginates into at the given page width.
func SnapshotPageCount(pixelWidth, pixelHeight int, pageWidthMM float64) int {
	if pixelWidth <= 0 || pixelHeight <= 0 {
		return 0
	}
	imgHeight := float64(pixelHeight) * pageWidthMM / float64(pixelWidth)
	pages := 1
	for position := imgHeight; position >= PageHeightMM; position -= PageHeightMM {
		pages++
	}
	return pages
}
