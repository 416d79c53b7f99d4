// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"seqalign/internal/clibase"
	"seqalign/internal/cliutil"
	"seqalign/internal/config"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	QueryFile   string
	Seq1        string
	TargetFiles []string
	Seq2        string

	// Settings layer; only flags in set override the config file.
	Settings config.Config
	set      map[string]bool

	ConfigFile string
	Quiet      bool
	Verbose    bool
	Version    bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, _ func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s --query q.fa [--targets t.fa ...] [targets.fa ...] [flags]\n", name)
		fmt.Fprintf(out, "  %s --seq1 ACGT --seq2 AGT [flags]\n", name)
	})
	return fs
}

// PrintExamples writes the --examples text.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		fmt.Fprintf(w, "  # two literal sequences\n  %s --seq1 kitten --seq2 sitting\n\n", name)
		fmt.Fprintf(w, "  # every query against every target, closest first\n  %s --query q.fa refs/*.fa.gz --sort\n\n", name)
		fmt.Fprintf(w, "  # near matches only, as JSON lines\n  %s --seq1 ACGTACGT --targets reads.fa --max-distance 2 -o jsonl\n", name)
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and positional target files may be interleaved.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, examples, noHeader bool
	def := config.Default()
	c := &opt.Settings

	// Input
	fs.StringVar(&opt.QueryFile, "query", "", "query FASTA file or '-'")
	fs.StringVar(&opt.Seq1, "seq1", "", "literal query sequence")
	var targets stringSlice
	fs.Var(&targets, "targets", "target FASTA file(s) (repeatable) or '-'")
	fs.Var(&targets, "t", "alias of --targets")
	fs.StringVar(&opt.Seq2, "seq2", "", "literal target sequence")
	fs.BoolVar(&c.Normalize, "normalize", def.Normalize, "strip whitespace/quotes and uppercase")
	fs.StringVar(&c.Alphabet, "alphabet", def.Alphabet, "any | dna | iupac | protein")

	// Alignment
	fs.Int64Var(&c.MaxCells, "max-cells", def.MaxCells, "matrix cell budget per pair and across workers (0=unlimited)")
	fs.StringVar(&c.OnOversize, "on-oversize", def.OnOversize, "skip | fail")
	fs.IntVar(&c.MaxDistance, "max-distance", def.MaxDistance, "drop pairs farther apart (-1=off)")

	// Performance
	fs.IntVar(&c.Threads, "threads", def.Threads, "worker threads (0=all CPUs)")
	fs.IntVar(&c.Threads, "j", def.Threads, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", def.Output, "text | tsv | json | jsonl")
	fs.StringVar(&c.Output, "o", def.Output, "alias of --output")
	fs.IntVar(&c.Width, "width", def.Width, "alignment columns per block")
	fs.IntVar(&c.CounterWidth, "counter-width", def.CounterWidth, "width of the column counter")
	fs.StringVar(&c.Color, "color", def.Color, "auto | always | never")
	fs.BoolVar(&c.Sort, "sort", def.Sort, "sort by distance, query, target")
	fs.BoolVar(&noHeader, "no-header", !def.Header, "suppress TSV header")
	fs.IntVar(&c.NoMatchExitCode, "no-match-exit-code", def.NoMatchExitCode, "exit code when nothing was emitted")

	// Misc
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML settings file")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log debug details")
	fs.BoolVar(&examples, "examples", false, "print usage examples")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help message")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}
	c.Header = !noHeader

	opt.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.set[canonical(f.Name)] = true })

	exp, err := cliutil.ExpandPositionals(append(fs.Args(), posArgs...))
	if err != nil {
		return opt, err
	}
	opt.TargetFiles = cliutil.DedupePaths(append([]string(targets), exp...))

	if err := opt.validate(); err != nil {
		return opt, err
	}
	return opt, nil
}

func (o Options) validate() error {
	switch {
	case o.QueryFile != "" && o.Seq1 != "":
		return errors.New("--query conflicts with --seq1")
	case o.QueryFile == "" && o.Seq1 == "":
		return errors.New("provide --query or --seq1")
	case o.Seq2 != "" && len(o.TargetFiles) > 0:
		return errors.New("--seq2 conflicts with --targets/positional files")
	case o.Seq2 == "" && len(o.TargetFiles) == 0:
		return errors.New("provide --targets, positional FASTA files, or --seq2")
	case o.Quiet && o.Verbose:
		return errors.New("--quiet conflicts with --verbose")
	}
	stdin := 0
	if o.QueryFile == "-" {
		stdin++
	}
	for _, f := range o.TargetFiles {
		if f == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("stdin ('-') can be used for only one input")
	}
	return nil
}

// canonical maps short aliases to the config key they set.
func canonical(name string) string {
	switch name {
	case "j":
		return "threads"
	case "o":
		return "output"
	}
	return name
}

// Apply overlays the explicitly set flags onto base.
func (o Options) Apply(base config.Config) config.Config {
	s := o.Settings
	for name := range o.set {
		switch name {
		case "normalize":
			base.Normalize = s.Normalize
		case "alphabet":
			base.Alphabet = s.Alphabet
		case "max-cells":
			base.MaxCells = s.MaxCells
		case "on-oversize":
			base.OnOversize = s.OnOversize
		case "max-distance":
			base.MaxDistance = s.MaxDistance
		case "threads":
			base.Threads = s.Threads
		case "output":
			base.Output = s.Output
		case "width":
			base.Width = s.Width
		case "counter-width":
			base.CounterWidth = s.CounterWidth
		case "color":
			base.Color = s.Color
		case "sort":
			base.Sort = s.Sort
		case "no-header":
			base.Header = s.Header
		case "no-match-exit-code":
			base.NoMatchExitCode = s.NoMatchExitCode
		}
	}
	return base
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
