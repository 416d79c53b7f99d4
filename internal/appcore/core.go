// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"seqalign/core/fasta"
	"seqalign/core/sequence"
	"seqalign/internal/cmdutil"
	"seqalign/internal/engine"
	"seqalign/internal/pipeline"
	"seqalign/internal/runutil"
	"seqalign/internal/writers"
)

// Exit codes shared by the seqalign entry points.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

type Options struct {
	Threads         int
	MaxDistance     int
	OnOversize      string
	CellBudget      int64 // matrix cells all workers may hold at once; 0 = unlimited
	NoMatchExitCode int
	Logger          *slog.Logger
}

type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error)
}

// Run streams every (query, target) alignment into the writer and maps the
// outcome to a process exit code.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	aln pipeline.Aligner,
	queries []fasta.Record,
	targets pipeline.Source,
	wf WriterFactory,
) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// A failed write (disk full, closed pipe) stops the pipeline instead of
	// letting it align pairs nobody will see.
	outw := bufio.NewWriter(cancelOnError{w: stdout, cancel: cancel})

	thr := runutil.EffectiveThreads(o.Threads)
	inCh, writeErr := wf.Start(outw, thr*4)

	st, perr := cmdutil.RunStream(
		ctx,
		pipeline.Config{
			Threads:     thr,
			MaxDistance: o.MaxDistance,
			OnOversize:  o.OnOversize,
			CellBudget:  o.CellBudget,
			Logger:      o.Logger,
		},
		aln,
		queries,
		targets,
		inCh,
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitRuntime
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		fmt.Fprintln(stderr, "error:", perr)
		return ExitCode(perr)
	}
	if st.Emitted == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}

type cancelOnError struct {
	w      io.Writer
	cancel context.CancelFunc
}

func (c cancelOnError) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		c.cancel()
	}
	return n, err
}

// ExitCode classifies a failed run: bad or oversized input is a usage
// error (2), anything else a runtime error (3).
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.Is(err, engine.ErrCapacity),
		errors.Is(err, sequence.ErrInvalidResidue),
		errors.Is(err, sequence.ErrEmpty),
		errors.Is(err, sequence.ErrUnknownAlphabet),
		errors.Is(err, fasta.ErrNoHeader),
		errors.Is(err, os.ErrNotExist):
		return ExitUsage
	default:
		return ExitRuntime
	}
}
