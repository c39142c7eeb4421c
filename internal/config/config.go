// Package config loads and validates the CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-htmldoc/internal/fileutil"
	"github.com/alnah/go-htmldoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrInvalidSize     = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")
)

// Output format constants.
const (
	FormatDocx = "docx"
	FormatPDF  = "pdf"
)

// Page size and margin bounds, matching the library's validation.
const (
	MinMargin = 0.25
	MaxMargin = 3.0
)

// Config holds all configuration for document export.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Page   PageConfig   `yaml:"page"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Format     string `yaml:"format"`     // "docx" or "pdf" (default: "docx")
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// PageConfig defines print page settings.
type PageConfig struct {
	Size   string  `yaml:"size"`   // "letter", "a4", "legal" (default: "letter")
	Margin float64 `yaml:"margin"` // inches, applied to all sides (default: 0.5)
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: FormatDocx},
		Page:   PageConfig{Size: "letter", Margin: 0.5},
	}
}

// LoadConfig loads and validates a YAML config from a file path or a
// config name. A value containing a path separator is treated as a file
// path; anything else is searched as a name in standard locations.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all configured values are usable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case "", FormatDocx, FormatPDF:
	default:
		return fmt.Errorf("%w: %q (must be docx or pdf)", ErrUnknownFormat, c.Output.Format)
	}

	switch strings.ToLower(c.Page.Size) {
	case "", "letter", "a4", "legal":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSize, c.Page.Size)
	}

	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, c.Page.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// resolveConfigPath searches for a named config file, trying .yaml then
// .yml, first in the current directory and then under the user config dir.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		local := name + ext
		if fileutil.FileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "htmldoc", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
