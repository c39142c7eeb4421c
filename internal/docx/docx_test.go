package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/alnah/go-htmldoc/internal/markup"
)

// readPart opens the rendered package and returns one part's content.
func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("rendered package is not a valid zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening part %s: %v", name, err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading part %s: %v", name, err)
		}
		return string(content)
	}
	t.Fatalf("part %s not found in package", name)
	return ""
}

func TestRender_DocumentPart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		blocks       []markup.Block
		wantContains []string
	}{
		{
			name:         "plain paragraph has no style",
			blocks:       []markup.Block{{Kind: markup.Paragraph, Text: "hello"}},
			wantContains: []string{"<w:t xml:space=\"preserve\">hello</w:t>"},
		},
		{
			name:         "heading level maps to style",
			blocks:       []markup.Block{{Kind: markup.Heading, Level: 2, Text: "Title"}},
			wantContains: []string{`<w:pStyle w:val="Heading2">`, "Title"},
		},
		{
			name:         "bullet item uses ListBullet",
			blocks:       []markup.Block{{Kind: markup.ListItem, List: markup.Bullet, Text: "A"}},
			wantContains: []string{`<w:pStyle w:val="ListBullet">`},
		},
		{
			name:         "numbered item uses ListNumber",
			blocks:       []markup.Block{{Kind: markup.ListItem, List: markup.Number, Text: "A"}},
			wantContains: []string{`<w:pStyle w:val="ListNumber">`},
		},
		{
			name:         "quote uses IntenseQuote",
			blocks:       []markup.Block{{Kind: markup.Quote, Text: "wise"}},
			wantContains: []string{`<w:pStyle w:val="IntenseQuote">`},
		},
		{
			name:         "line break markers become w:br runs",
			blocks:       []markup.Block{{Kind: markup.Paragraph, Text: "a\nb"}},
			wantContains: []string{"<w:br>", ">a</w:t>", ">b</w:t>"},
		},
		{
			name:         "text is xml escaped",
			blocks:       []markup.Block{{Kind: markup.Paragraph, Text: "a < b & c"}},
			wantContains: []string{"a &lt; b &amp; c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := Renderer{}.Render(tt.blocks)
			if err != nil {
				t.Fatalf("Render returned error: %v", err)
			}
			if len(data) == 0 {
				t.Fatal("Render returned empty bytes")
			}

			doc := readPart(t, data, "word/document.xml")
			for _, want := range tt.wantContains {
				if !strings.Contains(doc, want) {
					t.Errorf("document.xml missing %q:\n%s", want, doc)
				}
			}
		})
	}
}

func TestRender_PackageStructure(t *testing.T) {
	t.Parallel()

	data, err := Renderer{}.Render([]markup.Block{{Kind: markup.Paragraph, Text: "x"}})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	wantParts := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/numbering.xml",
	}
	for _, part := range wantParts {
		readPart(t, data, part)
	}

	styles := readPart(t, data, "word/styles.xml")
	for _, id := range []string{"Heading1", "Heading2", "Heading3", "ListBullet", "ListNumber", "IntenseQuote"} {
		if !strings.Contains(styles, id) {
			t.Errorf("styles.xml missing style %s", id)
		}
	}
}

func TestRender_EmptyModelStillValid(t *testing.T) {
	t.Parallel()

	data, err := Renderer{}.Render(nil)
	if err != nil {
		t.Fatalf("Render(nil) returned error: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")
	if !strings.Contains(doc, "<w:body>") {
		t.Errorf("document.xml missing body:\n%s", doc)
	}
}
