package htmldoc

import (
	"errors"
	"testing"
	"time"
)

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    *PageSettings
		wantErr error
	}{
		{
			name: "nil means defaults",
			page: nil,
		},
		{
			name: "defaults are valid",
			page: DefaultPageSettings(),
		},
		{
			name: "a4 valid",
			page: &PageSettings{Size: PageSizeA4, Margin: 1.0},
		},
		{
			name: "case-insensitive size",
			page: &PageSettings{Size: "Letter", Margin: 0.5},
		},
		{
			name:    "unknown size",
			page:    &PageSettings{Size: "tabloid", Margin: 0.5},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "margin below minimum",
			page:    &PageSettings{Size: PageSizeLetter, Margin: 0.1},
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "margin above maximum",
			page:    &PageSettings{Size: PageSizeLegal, Margin: 4},
			wantErr: ErrInvalidMargin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.page.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate returned error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPageSettings_PaperDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       *PageSettings
		wantWidth  float64
		wantHeight float64
	}{
		{name: "nil defaults to letter", page: nil, wantWidth: 8.5, wantHeight: 11},
		{name: "letter", page: &PageSettings{Size: PageSizeLetter}, wantWidth: 8.5, wantHeight: 11},
		{name: "a4", page: &PageSettings{Size: PageSizeA4}, wantWidth: 8.27, wantHeight: 11.69},
		{name: "legal", page: &PageSettings{Size: PageSizeLegal}, wantWidth: 8.5, wantHeight: 14},
		{name: "uppercase", page: &PageSettings{Size: "A4"}, wantWidth: 8.27, wantHeight: 11.69},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, h := tt.page.paperDimensions()
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("paperDimensions() = %v x %v, want %v x %v", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestPageSettings_MarginInches(t *testing.T) {
	t.Parallel()

	var nilPage *PageSettings
	if got := nilPage.marginInches(); got != DefaultMargin {
		t.Errorf("nil margin = %v, want %v", got, DefaultMargin)
	}
	if got := (&PageSettings{Margin: 1.5}).marginInches(); got != 1.5 {
		t.Errorf("margin = %v, want 1.5", got)
	}
	if got := (&PageSettings{}).marginInches(); got != DefaultMargin {
		t.Errorf("unset margin = %v, want %v", got, DefaultMargin)
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}

func TestWithTimeout_SetsTimeout(t *testing.T) {
	t.Parallel()

	e := &Exporter{cfg: exporterConfig{timeout: defaultTimeout}}
	WithTimeout(2 * time.Minute)(e)
	if e.cfg.timeout != 2*time.Minute {
		t.Errorf("timeout = %v, want 2m", e.cfg.timeout)
	}
}
