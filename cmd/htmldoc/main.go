package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	htmldoc "github.com/alnah/go-htmldoc"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flags.version {
		fmt.Println("htmldoc " + Version)
		return
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	poolSize := resolvePoolSize(flags.workers)
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Pool size: %d\n", poolSize)
	}

	var opts []htmldoc.Option
	if flags.timeout > 0 {
		opts = append(opts, htmldoc.WithTimeout(flags.timeout))
	}

	pool := htmldoc.NewExporterPool(poolSize, opts...)
	defer pool.Close()

	if err := runConvert(context.Background(), flags, &exporterPool{pool: pool}, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		pool.Close()
		os.Exit(1)
	}
}

// resolvePoolSize picks the worker count: explicit flag wins, otherwise
// derive from CPU count.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	return htmldoc.DefaultPoolSize()
}
