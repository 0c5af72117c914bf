package usecase

import (
	"context"
	"log/slog"

	"cv-exporter/internal/model"
)

// Renderer drives an external process that converts a composed HTML
// document into PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// SurfaceCapturer rasterizes a rendered surface of the given markup into a
// single tall PNG at print scale, with interactive affordances hidden.
type SurfaceCapturer interface {
	CaptureSurface(ctx context.Context, html string) ([]byte, error)
}

// Exporter turns one immutable CV model into a complete byte buffer. The
// two PDF paths and the DOCX path are implementations of this one
// capability, so parity can be asserted mechanically.
type Exporter interface {
	Export(ctx context.Context, cv *model.CV) ([]byte, error)
	ContentType() string
	Extension() string
}

// PDFExporter is the server path: compose HTML, print via the rendering
// process.
type PDFExporter struct {
	compositor *HTMLCompositor
	renderer   Renderer
}

func NewPDFExporter(r Renderer) *PDFExporter {
	return &PDFExporter{compositor: NewHTMLCompositor(), renderer: r}
}

func (e *PDFExporter) Export(ctx context.Context, cv *model.CV) ([]byte, error) {
	sections := VisibleSections(cv)
	html := e.compositor.Compose(cv, sections)
	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, NewError(KindRender, "pdf render failed", err)
	}
	return pdf, nil
}

func (e *PDFExporter) ContentType() string { return ContentTypePDF }
func (e *PDFExporter) Extension() string   { return string(FormatPDF) }

// SnapshotPDFExporter is the fallback path: rasterize the rendered surface
// and slice the bitmap into pages, without a print-to-PDF process.
type SnapshotPDFExporter struct {
	compositor *HTMLCompositor
	capturer   SurfaceCapturer
}

func NewSnapshotPDFExporter(c SurfaceCapturer) *SnapshotPDFExporter {
	return &SnapshotPDFExporter{compositor: NewHTMLCompositor(), capturer: c}
}

func (e *SnapshotPDFExporter) Export(ctx context.Context, cv *model.CV) ([]byte, error) {
	sections := VisibleSections(cv)
	html := e.compositor.Compose(cv, sections)
	surface, err := e.capturer.CaptureSurface(ctx, html)
	if err != nil {
		return nil, NewError(KindSnapshot, "surface capture failed", err)
	}
	return AssembleSnapshotPDF(surface, PageWidthMM)
}

func (e *SnapshotPDFExporter) ContentType() string { return ContentTypePDF }
func (e *SnapshotPDFExporter) Extension() string   { return string(FormatPDF) }

// DOCXExporter builds the paragraph tree and serializes it.
type DOCXExporter struct {
	builder *DOCXBuilder
}

func NewDOCXExporter() *DOCXExporter {
	return &DOCXExporter{builder: NewDOCXBuilder()}
}

func (e *DOCXExporter) Export(ctx context.Context, cv *model.CV) ([]byte, error) {
	sections := VisibleSections(cv)
	return e.builder.Serialize(e.builder.Build(cv, sections))
}

func (e *DOCXExporter) ContentType() string { return ContentTypeDOCX }
func (e *DOCXExporter) Extension() string   { return string(FormatDOCX) }

// ExportResult is one complete downloadable artifact.
type ExportResult struct {
	Bytes       []byte
	Filename    string
	ContentType string
}

// Service routes a format selector to an exporter. Each Export call is an
// independent, stateless unit of work; nothing here is shared mutable state,
// so calls are safe to run concurrently.
type Service struct {
	pdf    Exporter
	docx   Exporter
	logger *slog.Logger
}

// NewService wires the export pipelines. When no renderer is available the
// PDF path falls back to the snapshot pipeline.
func NewService(renderer Renderer, capturer SurfaceCapturer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	var pdf Exporter
	if renderer != nil {
		pdf = NewPDFExporter(renderer)
	} else {
		logger.Warn("no pdf renderer configured, using snapshot fallback")
		pdf = NewSnapshotPDFExporter(capturer)
	}
	return &Service{pdf: pdf, docx: NewDOCXExporter(), logger: logger}
}

// Export produces one complete file or one error; there is no partial
// success and no automatic retry.
func (s *Service) Export(ctx context.Context, cv *model.CV, format Format) (*ExportResult, error) {
	var exp Exporter
	switch format {
	case FormatPDF:
		exp = s.pdf
	case FormatDOCX:
		exp = s.docx
	default:
		return nil, NewError(KindInput, "unsupported format: "+string(format), nil)
	}

	data, err := exp.Export(ctx, cv)
	if err != nil {
		s.logger.Error("export failed", "format", format, "error", err)
		return nil, err
	}

	res := &ExportResult{
		Bytes:       data,
		Filename:    Filename(cv.DocumentTitle(), format),
		ContentType: exp.ContentType(),
	}
	s.logger.Info("export complete", "format", format, "filename", res.Filename, "bytes", len(data))
	return res, nil
}
