// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"refscan/internal/version"
)

// Matching modes.
const (
	ModeScan        = "scan"
	ModeSuffixArray = "suffixarray"
	ModeIndex       = "index"
	ModeIndexPigeon = "index-pigeon"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Mode      string
	Reference string
	Queries   string

	QueryCount int
	Errors     int

	Threads  int
	MinBlock int

	Verbose bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: count query occurrences in a reference, exactly or within a substitution budget

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Mode, "mode", "", "matching mode: scan | suffixarray | index | index-pigeon [*]")
	fs.StringVar(&opt.Reference, "reference", "", "reference FASTA file (optionally .gz, or '-') [*]")
	fs.StringVar(&opt.Queries, "queries", "", "query FASTA file (optionally .gz, or '-') [*]")

	fs.IntVar(&opt.QueryCount, "query-count", 100, "replicate queries up to this count [100]")
	fs.IntVar(&opt.Errors, "errors", 0, "substitution budget for index-pigeon [0]")

	fs.IntVar(&opt.Threads, "threads", 0, "number of workers (0 = all CPUs) [0]")
	fs.IntVar(&opt.MinBlock, "min-block", 64, "minimum queries per task [64]")

	fs.BoolVar(&opt.Verbose, "verbose", false, "print work partition info [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	switch opt.Mode {
	case ModeScan, ModeSuffixArray, ModeIndex, ModeIndexPigeon:
	case "":
		return opt, errors.New("--mode is required")
	default:
		return opt, fmt.Errorf("invalid --mode %q", opt.Mode)
	}
	if opt.Reference == "" {
		return opt, errors.New("--reference is required")
	}
	if opt.Queries == "" {
		return opt, errors.New("--queries is required")
	}
	if opt.QueryCount < 1 {
		return opt, errors.New("--query-count must be ≥ 1")
	}
	if opt.Errors < 0 {
		return opt, errors.New("--errors must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.MinBlock < 1 {
		return opt, errors.New("--min-block must be ≥ 1")
	}
	return opt, nil
}
