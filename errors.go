package htmldoc

import (
	"errors"

	"github.com/alnah/go-htmldoc/internal/docx"
	"github.com/alnah/go-htmldoc/internal/markup"
)

// Sentinel errors for library operations.
var (
	// ErrMalformedMarkup reports an input tokenization failure. Parse
	// errors propagate to the caller untranslated.
	ErrMalformedMarkup = markup.ErrMalformedMarkup

	// ErrPackageWrite reports a failure to materialize the DOCX package.
	ErrPackageWrite = docx.ErrPackageWrite

	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")
)
