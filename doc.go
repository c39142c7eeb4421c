// Package htmldoc converts editor HTML into shareable documents: a
// word-processor package (DOCX) and a paginated print file (PDF).
//
// # Quick Start
//
// Create an exporter, export, and close when done:
//
//	exp := htmldoc.NewExporter()
//	defer exp.Close()
//
//	docx, err := exp.ExportDocx(ctx, htmldoc.Input{
//	    HTML: "<h1>Hello</h1><p>World</p>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", docx, 0644)
//
// # Input Contract
//
// Only the tags p, h1, h2, h3, li, ul, ol, blockquote and br carry semantic
// meaning; all other tags are structurally transparent (ignored as tags,
// their text still consumed). Character references are decoded by the
// tokenizer.
//
// # Conversion Pipeline
//
// Both exports share the same front half:
//
//  1. Streaming parse of the restricted-tag HTML into an ordered Block
//     sequence (no backtracking, single inline buffer per open block)
//  2. Format-specific rendering: flow-based paragraphs serialized into an
//     OOXML package, or fixed-page flowables printed via headless Chrome
//     (go-rod)
//
// Use StripFences to normalize generated payloads that arrive wrapped in
// markdown code fences.
//
// # Parallel Processing
//
// An Exporter owns one browser instance; for batch conversion use
// ExporterPool to run renders in parallel:
//
//	pool := htmldoc.NewExporterPool(4)
//	defer pool.Close()
//
//	exp := pool.Acquire()
//	defer pool.Release(exp)
//
// # Browser Requirements
//
// PDF export requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package htmldoc
