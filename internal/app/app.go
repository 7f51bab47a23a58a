// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"time"

	"refscan-core/fasta"
	"refscan-core/fmindex"
	"refscan-core/pigeon"
	"refscan-core/search"
	"refscan-core/workload"
	"refscan/internal/cli"
	"refscan/internal/pipeline"
	"refscan/internal/version"
)

// Run parses argv, executes the selected search mode, and returns the
// process exit code: 0 on success, 1 on runtime failure, 2 on usage errors.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("refscan")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, "error:", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintln(outw, version.Version)
		return 0
	}

	if err := run(ctx, opts, outw); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, opts cli.Options, outw io.Writer) error {
	// Queries first (small), then the reference.
	queries, err := fasta.ReadAll(opts.Queries)
	if err != nil {
		return err
	}
	queries, err = workload.Scale(queries, opts.QueryCount)
	if err != nil {
		return err
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > len(queries) {
		threads = len(queries)
	}
	if threads < 1 {
		threads = 1
	}

	records, err := fasta.ReadAll(opts.Reference)
	if err != nil {
		return err
	}

	// Exactly one reference representation stays live per mode: the
	// concatenated text for scan/suffixarray, the record list for the
	// index modes.
	var counter func(begin, end int) (int, error)

	switch opts.Mode {
	case cli.ModeScan:
		text := fasta.Concat(records)
		records = nil
		counter = func(b, e int) (int, error) {
			total := 0
			for i := b; i < e; i++ {
				total += search.CountScan(text, queries[i])
			}
			return total, nil
		}

	case cli.ModeSuffixArray:
		text := fasta.Concat(records)
		records = nil
		t0 := time.Now()
		sa, err := search.BuildSuffixArray(text)
		if err != nil {
			return err
		}
		fmt.Fprintf(outw, "Index Construction time: %f seconds.\n", time.Since(t0).Seconds())
		counter = func(b, e int) (int, error) {
			total := 0
			for i := b; i < e; i++ {
				total += sa.Count(queries[i])
			}
			return total, nil
		}

	case cli.ModeIndex:
		t0 := time.Now()
		idx, err := fmindex.Build(records)
		if err != nil {
			return err
		}
		fmt.Fprintf(outw, "Index Construction time: %f seconds.\n", time.Since(t0).Seconds())
		counter = func(b, e int) (int, error) {
			total := 0
			for i := b; i < e; i++ {
				total += idx.Count(queries[i])
			}
			return total, nil
		}

	case cli.ModeIndexPigeon:
		t0 := time.Now()
		idx, err := fmindex.Build(records)
		if err != nil {
			return err
		}
		fmt.Fprintf(outw, "Index Construction time: %f seconds.\n", time.Since(t0).Seconds())
		recs := records
		counter = func(b, e int) (int, error) {
			total := 0
			for i := b; i < e; i++ {
				total += pigeon.Count(recs, idx, queries[i], opts.Errors)
			}
			return total, nil
		}

	default:
		return fmt.Errorf("unknown mode %q", opts.Mode)
	}

	chunks := workload.Partition(len(queries), threads, opts.MinBlock)
	if opts.Verbose {
		fmt.Fprintf(outw, "[DEBUG] queries=%d threads=%d min_block=%d blocks=%d\n",
			len(queries), threads, opts.MinBlock, len(chunks))
	}

	t0 := time.Now()
	total, err := pipeline.Count(ctx, threads, chunks, counter)
	if err != nil {
		return err
	}
	fmt.Fprintf(outw, "Search time: %f seconds.\n", time.Since(t0).Seconds())

	label := "hits"
	if opts.Mode == cli.ModeIndexPigeon {
		label = "verified_hits"
	}
	fmt.Fprintf(outw, "queries=%d errors=%d threads=%d %s=%d\n",
		len(queries), opts.Errors, threads, label, total)
	return nil
}
