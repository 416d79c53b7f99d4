// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"seqalign/core/fasta"
	"seqalign/core/sequence"
	"seqalign/internal/appcore"
	"seqalign/internal/cli"
	"seqalign/internal/clibase"
	"seqalign/internal/cmdutil"
	"seqalign/internal/config"
	"seqalign/internal/engine"
	"seqalign/internal/output"
	"seqalign/internal/pipeline"
	"seqalign/internal/pretty"
	"seqalign/internal/runutil"
	"seqalign/internal/version"
	"seqalign/internal/writers"
)

const name = "seqalign"

// IDs given to literal --seq1/--seq2 inputs.
const (
	Seq1ID = "seq1"
	Seq2ID = "seq2"
)

// flush writes buffered help/version text and maps the result to an exit code.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return appcore.ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitRuntime
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, appcore.ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw, name)
			return flush(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(outw, stderr, appcore.ExitOK)
	}

	cfg := config.Default()
	if opts.ConfigFile != "" {
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return appcore.ExitUsage
		}
	}
	cfg = opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	alphabet, err := sequence.ParseAlphabet(cfg.Alphabet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	log.Debug("settings", "config", opts.ConfigFile, "output", cfg.Output,
		"max_cells", cfg.MaxCells, "max_distance", cfg.MaxDistance, "alphabet", cfg.Alphabet)

	var queries []fasta.Record
	if opts.Seq1 != "" {
		queries = []fasta.Record{{ID: Seq1ID, Seq: []byte(opts.Seq1)}}
	} else {
		queries, err = fasta.ReadAll(parent, opts.QueryFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return appcore.ExitCode(err)
		}
		if len(queries) == 0 {
			_, _ = fmt.Fprintf(stderr, "error: no query records in %s\n", opts.QueryFile)
			return appcore.ExitUsage
		}
	}

	var targets pipeline.Source
	if opts.Seq2 != "" {
		targets = pipeline.RecordSource("", fasta.Record{ID: Seq2ID, Seq: []byte(opts.Seq2)})
	} else {
		targets = pipeline.FileSource(opts.TargetFiles)
	}

	stdoutFile, _ := stdout.(*os.File)
	popt := pretty.Options{
		Width:        cfg.Width,
		CounterWidth: cfg.CounterWidth,
		Color:        cfg.Output == output.FormatText && runutil.ColorEnabled(cfg.Color, stdoutFile),
	}
	wf := appcore.NewResultWriterFactory(writers.Options{
		Format: cfg.Output,
		Sort:   cfg.Sort,
		Header: cfg.Header,
		Pretty: popt,
	})

	eng := engine.New(engine.Config{
		MaxCells:  cfg.MaxCells,
		Normalize: cfg.Normalize,
		Alphabet:  alphabet,
	})

	return appcore.Run(parent, stdout, stderr, appcore.Options{
		Threads:         cfg.Threads,
		MaxDistance:     cfg.MaxDistance,
		OnOversize:      cfg.OnOversize,
		CellBudget:      cfg.MaxCells,
		NoMatchExitCode: cfg.NoMatchExitCode,
		Logger:          log,
	}, eng, queries, targets, wf)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
