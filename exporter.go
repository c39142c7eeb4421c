package htmldoc

import (
	"context"
	"fmt"

	"github.com/alnah/go-htmldoc/internal/docx"
	"github.com/alnah/go-htmldoc/internal/flow"
	"github.com/alnah/go-htmldoc/internal/markup"
)

// packageRenderer abstracts the word-processor backend.
type packageRenderer interface {
	Render(blocks []markup.Block) ([]byte, error)
}

// Compile-time interface implementation checks.
var (
	_ packageRenderer = docx.Renderer{}
	_ pdfConverter    = (*rodConverter)(nil)
	_ pdfRenderer     = (*rodRenderer)(nil)
)

// Exporter orchestrates the HTML-to-document pipeline: one shared parser
// feeding two renderer backends. Exports on a single Exporter run one at a
// time; use ExporterPool for parallel renders.
type Exporter struct {
	cfg             exporterConfig
	packageRenderer packageRenderer
	pdfConverter    pdfConverter
}

// NewExporter creates an Exporter with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		cfg:             exporterConfig{timeout: defaultTimeout},
		packageRenderer: docx.Renderer{},
	}

	for _, opt := range opts {
		opt(e)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if e.pdfConverter == nil {
		e.pdfConverter = newRodConverter(e.cfg.timeout)
	}

	return e
}

// ExportDocx parses the input HTML and renders the word-processor package.
// The operation is all-or-nothing: it returns complete package bytes or an
// error. An input with no content blocks still yields a valid package.
func (e *Exporter) ExportDocx(ctx context.Context, input Input) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blocks, err := markup.Parse(input.HTML)
	if err != nil {
		return nil, err
	}

	data, err := e.packageRenderer.Render(blocks)
	if err != nil {
		return nil, fmt.Errorf("rendering package: %w", err)
	}
	return data, nil
}

// ExportPDF parses the input HTML, builds the print story and renders it
// through the layout engine. An input with no content blocks produces a
// document with a single placeholder paragraph, never an error.
func (e *Exporter) ExportPDF(ctx context.Context, input Input) ([]byte, error) {
	if err := input.Page.Validate(); err != nil {
		return nil, err
	}

	blocks, err := markup.Parse(input.HTML)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	story := flow.BuildStory(blocks)
	htmlContent := flow.StoryHTML(story)

	pdfBytes, err := e.pdfConverter.ToPDF(ctx, htmlContent, input.Page)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return pdfBytes, nil
}

// Close releases resources (headless Chrome browser).
func (e *Exporter) Close() error {
	if e.pdfConverter != nil {
		return e.pdfConverter.Close()
	}
	return nil
}
