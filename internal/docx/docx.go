// Package docx writes the word-processor package: an OOXML zip whose
// document part is generated from the Block sequence. Each Block becomes a
// styled paragraph; the style names match the ones defined in styles.xml.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-htmldoc/internal/fileutil"
	"github.com/alnah/go-htmldoc/internal/markup"
)

// ErrPackageWrite reports a failure to materialize the package.
var ErrPackageWrite = errors.New("package generation failed")

// paragraph, run and friends mirror the WordprocessingML elements the
// renderer emits. Only marshaling is needed, so the shapes stay minimal.
type paragraph struct {
	XMLName xml.Name   `xml:"w:p"`
	Props   *paraProps `xml:"w:pPr,omitempty"`
	Runs    []run      `xml:"w:r"`
}

type paraProps struct {
	Style *styleRef `xml:"w:pStyle,omitempty"`
}

type styleRef struct {
	Val string `xml:"w:val,attr"`
}

// run carries either a text node or a line break, never both.
type run struct {
	Break *lineBreak `xml:"w:br,omitempty"`
	Text  *runText   `xml:"w:t,omitempty"`
}

type lineBreak struct{}

type runText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

// headingStyles maps heading levels to their style IDs.
var headingStyles = map[int]string{1: "Heading1", 2: "Heading2", 3: "Heading3"}

// Renderer maps a Block sequence to package bytes.
type Renderer struct{}

// Render serializes the blocks into a complete package and returns its
// bytes. The zip is written to a scoped, uniquely named temporary location,
// read back, and deleted on all exit paths; callers never see a path. An
// empty block sequence still yields a valid (empty-bodied) package.
func (Renderer) Render(blocks []markup.Block) ([]byte, error) {
	documentXML, err := marshalDocument(blocks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}

	path, cleanup, err := fileutil.ScopedTempPath("docx")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}
	defer cleanup()

	if err := writePackage(path, documentXML); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path generated above
	if err != nil {
		return nil, fmt.Errorf("%w: reading package: %v", ErrPackageWrite, err)
	}
	return data, nil
}

// marshalDocument builds the document part from the blocks.
func marshalDocument(blocks []markup.Block) (string, error) {
	var body strings.Builder
	for _, b := range blocks {
		p := paragraph{Runs: runsFor(b.Text)}
		if style := styleFor(b); style != "" {
			p.Props = &paraProps{Style: &styleRef{Val: style}}
		}
		out, err := xml.Marshal(p)
		if err != nil {
			return "", fmt.Errorf("marshaling paragraph: %w", err)
		}
		body.Write(out)
		body.WriteByte('\n')
	}
	return fmt.Sprintf(documentXMLTemplate, body.String()), nil
}

// styleFor picks the paragraph style ID; plain paragraphs use no style.
func styleFor(b markup.Block) string {
	switch b.Kind {
	case markup.Heading:
		return headingStyles[b.Level]
	case markup.ListItem:
		if b.List == markup.Bullet {
			return "ListBullet"
		}
		return "ListNumber"
	case markup.Quote:
		return "IntenseQuote"
	}
	return ""
}

// runsFor splits block text on line-break markers into text and break runs.
func runsFor(text string) []run {
	segments := strings.Split(text, "\n")
	runs := make([]run, 0, len(segments))
	for i, seg := range segments {
		if i > 0 {
			runs = append(runs, run{Break: &lineBreak{}})
		}
		if seg != "" {
			runs = append(runs, run{Text: &runText{Space: "preserve", Value: seg}})
		}
	}
	return runs
}

// writePackage zips all parts to the given path.
func writePackage(path, documentXML string) (err error) {
	f, err := os.Create(path) // #nosec G304 -- path generated by ScopedTempPath
	if err != nil {
		return fmt.Errorf("creating package file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	zw := zip.NewWriter(f)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", numberingXML},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("creating part %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("writing part %s: %w", part.name, err)
		}
	}
	return zw.Close()
}
