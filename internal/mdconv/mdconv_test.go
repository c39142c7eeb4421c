package mdconv

import (
	"context"
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{
			name:         "heading",
			input:        "# Hello",
			wantContains: []string{"<h1", "Hello", "</h1>"},
		},
		{
			name:         "paragraph with hard break",
			input:        "line one\nline two",
			wantContains: []string{"<p>", "<br", "line two"},
		},
		{
			name:         "bullet list",
			input:        "- A\n- B",
			wantContains: []string{"<ul>", "<li>A</li>", "<li>B</li>"},
		},
		{
			name:         "numbered list",
			input:        "1. one\n2. two",
			wantContains: []string{"<ol>", "<li>one</li>"},
		},
		{
			name:         "blockquote",
			input:        "> quoted",
			wantContains: []string{"<blockquote>", "quoted"},
		},
	}

	conv := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML returned error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestToHTML_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New().ToHTML(ctx, "# x"); err == nil {
		t.Error("ToHTML with cancelled context returned nil error")
	}
}
