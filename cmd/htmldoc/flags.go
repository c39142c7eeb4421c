package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every command-line option after parsing.
type cliFlags struct {
	config   string
	format   string
	output   string
	pageSize string
	margin   float64
	timeout  time.Duration
	workers  int
	quiet    bool
	verbose  bool
	version  bool

	inputs []string
}

func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("htmldoc", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "path to YAML config file")
	fs.StringVarP(&f.format, "format", "f", "", "output format: docx or pdf")
	fs.StringVarP(&f.output, "out", "o", "", "output directory (default: alongside input)")
	fs.StringVar(&f.pageSize, "page-size", "", "PDF page size: letter, a4 or legal")
	fs.Float64Var(&f.margin, "margin", 0, "PDF margin in inches, applied to all four sides")
	fs.DurationVar(&f.timeout, "timeout", 0, "per-document conversion timeout (e.g. 45s)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = derive from CPU count)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `htmldoc converts HTML and Markdown files to DOCX or PDF.

Usage:
  htmldoc [flags] <file-or-directory>...

Examples:
  htmldoc report.html
  htmldoc --format pdf --page-size a4 notes.md
  htmldoc --format pdf --out build/ docs/

Flags:
%s`, fs.FlagUsages())
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	f.inputs = fs.Args()

	return f, nil
}
