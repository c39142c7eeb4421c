package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "htmldoc.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
output:
  format: pdf
  defaultDir: /tmp/out
page:
  size: a4
  margin: 1.0
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Output.Format != FormatPDF {
		t.Errorf("format = %q, want pdf", cfg.Output.Format)
	}
	if cfg.Page.Size != "a4" || cfg.Page.Margin != 1.0 {
		t.Errorf("page = %+v, want a4/1.0", cfg.Page)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Output.Format != FormatDocx {
		t.Errorf("default format = %q, want docx", cfg.Output.Format)
	}
	if cfg.Page.Size != "letter" || cfg.Page.Margin != 0.5 {
		t.Errorf("default page = %+v, want letter/0.5", cfg.Page)
	}
}

func TestLoadConfig_NotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_EmptyName(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfig_ResolvesNameInCurrentDir(t *testing.T) {
	dir := t.TempDir()
	content := "output:\n  format: pdf\n"
	if err := os.WriteFile(filepath.Join(dir, "custom.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Chdir(dir)

	cfg, err := LoadConfig("custom")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Output.Format != FormatPDF {
		t.Errorf("format = %q, want pdf", cfg.Output.Format)
	}
}

func TestLoadConfig_UnresolvedNameListsTriedPaths(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadConfig("nonexistent")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_UnknownField(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "bogus: true\n")
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Output.Format = "odt" },
			wantErr: ErrUnknownFormat,
		},
		{
			name:    "bad size",
			mutate:  func(c *Config) { c.Page.Size = "tabloid" },
			wantErr: ErrInvalidSize,
		},
		{
			name:    "margin too small",
			mutate:  func(c *Config) { c.Page.Margin = 0.1 },
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "margin too large",
			mutate:  func(c *Config) { c.Page.Margin = 5 },
			wantErr: ErrInvalidMargin,
		},
		{
			name:   "zero margin means default",
			mutate: func(c *Config) { c.Page.Margin = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
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
