//go:build integration

package htmldoc

import (
	"bytes"
	"context"
	"testing"
	"time"
)

// Requires Chrome/Chromium. Run with: go test -tags integration ./...
func TestExportPDF_Integration(t *testing.T) {
	exp := NewExporter(WithTimeout(2 * time.Minute))
	defer exp.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tests := []struct {
		name string
		html string
	}{
		{name: "mixed document", html: "<h1>Doc</h1><p>Body</p><ul><li>A</li><li>B</li></ul>"},
		{name: "empty model placeholder", html: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdf, err := exp.ExportPDF(ctx, Input{HTML: tt.html})
			if err != nil {
				t.Fatalf("ExportPDF returned error: %v", err)
			}
			if !bytes.HasPrefix(pdf, []byte("%PDF")) {
				t.Errorf("output does not start with %%PDF header")
			}
		})
	}
}
