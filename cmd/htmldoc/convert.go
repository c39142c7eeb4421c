package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	htmldoc "github.com/alnah/go-htmldoc"
	"github.com/alnah/go-htmldoc/internal/config"
	"github.com/alnah/go-htmldoc/internal/hints"
	"github.com/alnah/go-htmldoc/internal/mdconv"
)

// Sentinel errors for the conversion loop.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrInvalidExtension = errors.New("input must have .html, .htm or .md extension")
	ErrInvalidWorkers   = errors.New("workers must not be negative")
	ErrReadInput        = errors.New("failed to read input file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrBatchFailed      = errors.New("some files failed to convert")
)

const (
	dirPermissions  = 0o750
	filePermissions = 0o600
)

// Exporter is the subset of the library API the conversion loop needs.
// Declared here so tests can substitute a fake.
type Exporter interface {
	ExportDocx(ctx context.Context, input htmldoc.Input) ([]byte, error)
	ExportPDF(ctx context.Context, input htmldoc.Input) ([]byte, error)
}

var _ Exporter = (*htmldoc.Exporter)(nil)

// Pool hands out exporters to workers.
type Pool interface {
	Acquire() Exporter
	Release(Exporter)
	Size() int
}

// convertParams carries the merged flag and config values through the
// conversion loop.
type convertParams struct {
	format    string
	outputDir string
	page      *htmldoc.PageSettings
	quiet     bool
	verbose   bool
}

type fileJob struct {
	inputPath  string
	outputPath string
}

type fileResult struct {
	job      fileJob
	err      error
	duration time.Duration
}

func runConvert(ctx context.Context, f *cliFlags, pool Pool, stderr io.Writer) error {
	if f.workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, f.workers)
	}

	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}
	params := mergeFlags(f, cfg)

	inputs := f.inputs
	if len(inputs) == 0 && cfg.Input.DefaultDir != "" {
		inputs = []string{cfg.Input.DefaultDir}
	}
	if len(inputs) == 0 {
		return ErrNoInput
	}

	var jobs []fileJob
	for _, input := range inputs {
		found, err := discoverJobs(input, params)
		if err != nil {
			return err
		}
		jobs = append(jobs, found...)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("%w: no convertible files found", ErrNoInput)
	}

	results := convertAll(ctx, jobs, params, pool)

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(stderr, "FAIL %s: %v%s\n", r.job.inputPath, r.err, hintsFor(r.err))
			continue
		}
		if !params.quiet {
			fmt.Fprintf(stderr, "OK   %s -> %s (%s)\n",
				r.job.inputPath, r.job.outputPath, r.duration.Round(time.Millisecond))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(results))
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound())
		}
		return nil, err
	}
	return cfg, nil
}

// mergeFlags overlays command-line flags on top of the loaded config.
// Flags win whenever they are set.
func mergeFlags(f *cliFlags, cfg *config.Config) *convertParams {
	params := &convertParams{
		format:    cfg.Output.Format,
		outputDir: cfg.Output.DefaultDir,
		quiet:     f.quiet,
		verbose:   f.verbose,
	}
	if f.format != "" {
		params.format = strings.ToLower(f.format)
	}
	if f.output != "" {
		params.outputDir = f.output
	}

	page := htmldoc.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = strings.ToLower(cfg.Page.Size)
	}
	if cfg.Page.Margin > 0 {
		page.Margin = cfg.Page.Margin
	}
	if f.pageSize != "" {
		page.Size = strings.ToLower(f.pageSize)
	}
	if f.margin > 0 {
		page.Margin = f.margin
	}
	params.page = page

	return params
}

// discoverJobs expands a file or directory path into conversion jobs.
// Directories are scanned one level deep; unknown extensions are
// skipped in directory mode but rejected when named explicitly.
func discoverJobs(input string, params *convertParams) ([]fileJob, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	if !info.IsDir() {
		if !hasConvertibleExtension(input) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, input)
		}
		return []fileJob{{inputPath: input, outputPath: outputPathFor(input, params)}}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	var jobs []fileJob
	for _, entry := range entries {
		if entry.IsDir() || !hasConvertibleExtension(entry.Name()) {
			continue
		}
		path := filepath.Join(input, entry.Name())
		jobs = append(jobs, fileJob{inputPath: path, outputPath: outputPathFor(path, params)})
	}
	return jobs, nil
}

func hasConvertibleExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".md":
		return true
	}
	return false
}

// outputPathFor swaps the input extension for the target format and
// relocates the file into the output directory when one is set.
func outputPathFor(inputPath string, params *convertParams) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	name := base + "." + params.format
	if params.outputDir != "" {
		return filepath.Join(params.outputDir, name)
	}
	return filepath.Join(filepath.Dir(inputPath), name)
}

// convertAll fans the jobs out over the pool. Concurrency is bounded by
// the pool size; results keep the job order.
func convertAll(ctx context.Context, jobs []fileJob, params *convertParams, pool Pool) []fileResult {
	results := make([]fileResult, len(jobs))
	sem := make(chan struct{}, pool.Size())
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job fileJob) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			exp := pool.Acquire()
			defer pool.Release(exp)

			start := time.Now()
			err := convertFile(ctx, exp, job, params)
			results[i] = fileResult{job: job, err: err, duration: time.Since(start)}
		}(i, job)
	}
	wg.Wait()
	return results
}

// convertFile reads one input, normalizes it to HTML and writes the
// exported document.
func convertFile(ctx context.Context, exp Exporter, job fileJob, params *convertParams) error {
	data, err := os.ReadFile(job.inputPath) // #nosec G304 -- user-provided input path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	content := htmldoc.StripFences(string(data))
	if strings.EqualFold(filepath.Ext(job.inputPath), ".md") {
		content, err = mdconv.New().ToHTML(ctx, content)
		if err != nil {
			return err
		}
	}

	input := htmldoc.Input{HTML: content, Page: params.page}
	var out []byte
	switch params.format {
	case config.FormatPDF:
		out, err = exp.ExportPDF(ctx, input)
	default:
		out, err = exp.ExportDocx(ctx, input)
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(job.outputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(job.outputPath, out, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// hintsFor maps known failure modes to actionable hints.
func hintsFor(err error) string {
	switch {
	case errors.Is(err, htmldoc.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	}
	return ""
}
