// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"seqalign/core/align"
	"seqalign/core/fasta"
	"seqalign/internal/engine"
)

// Oversize policies.
const (
	OversizeSkip = "skip"
	OversizeFail = "fail"
)

// Config controls the alignment pipeline.
type Config struct {
	Threads     int    // number of worker goroutines (>=1)
	MaxDistance int    // drop pairs farther apart than this; <0 disables
	OnOversize  string // OversizeSkip or OversizeFail
	// CellBudget caps the matrix cells held by all workers at once; 0 means
	// unlimited. A pair larger than the budget runs alone.
	CellBudget int64
	Logger     *slog.Logger
}

// Stats summarizes one run.
type Stats struct {
	Pairs    int // pairs considered
	Emitted  int // pairs passed to visit
	Filtered int // pairs dropped by MaxDistance
	Oversize int // pairs refused by the cell budget (skip policy)
}

type job struct {
	idx  int
	q, t fasta.Record
	file string
}

type outcome struct {
	idx      int
	res      engine.Result
	filtered bool
	oversize *engine.CapacityError
}

// ForEachAlignment aligns every query against every record from targets and
// calls visit with the results in input order (target-major, then query).
// Alignment runs on cfg.Threads workers; visit is never called concurrently.
// It returns the first error encountered (including context cancellation).
func ForEachAlignment(
	ctx context.Context,
	cfg Config,
	aln Aligner,
	queries []fasta.Record,
	targets Source,
	visit func(engine.Result) error,
) (Stats, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	prepared := make([]fasta.Record, len(queries))
	for i, q := range queries {
		p, err := aln.Prepare(q)
		if err != nil {
			return Stats{}, err
		}
		prepared[i] = p
	}

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan outcome, cfg.Threads*2)

	// Feed work
	g.Go(func() error {
		defer close(jobs)
		idx := 0
		return targets(gctx, func(file string, t fasta.Record) error {
			t, err := aln.Prepare(t)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			for _, q := range prepared {
				select {
				case jobs <- job{idx: idx, q: q, t: t, file: file}:
					idx++
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	})

	// Workers
	var cells *semaphore.Weighted
	if cfg.CellBudget > 0 {
		cells = semaphore.NewWeighted(cfg.CellBudget)
	}
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				out, err := runJob(gctx, aln, cfg, cells, j)
				if err != nil {
					return err
				}
				select {
				case results <- out:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: restore input order before visiting.
	var st Stats
	g.Go(func() error {
		pending := make(map[int]outcome)
		next := 0
		for out := range results {
			pending[out.idx] = out
			for {
				o, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				st.Pairs++
				switch {
				case o.oversize != nil:
					st.Oversize++
					log.Warn("skipping oversized pair",
						"query", o.oversize.QueryID, "target", o.oversize.TargetID,
						"cells", o.oversize.Cells, "limit", o.oversize.Limit)
				case o.filtered:
					st.Filtered++
				default:
					if err := visit(o.res); err != nil {
						return err
					}
					st.Emitted++
				}
			}
		}
		return nil
	})

	err := g.Wait()
	log.Debug("pipeline done", "pairs", st.Pairs, "emitted", st.Emitted,
		"filtered", st.Filtered, "oversize", st.Oversize)
	if ctx.Err() != nil {
		return st, ctx.Err()
	}
	return st, err
}

func runJob(ctx context.Context, aln Aligner, cfg Config, cells *semaphore.Weighted, j job) (outcome, error) {
	out := outcome{idx: j.idx}
	if err := aln.Admit(j.q.ID, j.t.ID, len(j.q.Seq), len(j.t.Seq)); err != nil {
		var ce *engine.CapacityError
		if errors.As(err, &ce) && cfg.OnOversize != OversizeFail {
			out.oversize = ce
			return out, nil
		}
		return out, err
	}
	if !aln.Within(j.q, j.t, cfg.MaxDistance) {
		out.filtered = true
		return out, nil
	}
	if cells != nil {
		w := min(align.Cells(len(j.q.Seq), len(j.t.Seq)), cfg.CellBudget)
		if err := cells.Acquire(ctx, w); err != nil {
			return out, err
		}
		defer cells.Release(w)
	}
	res, err := aln.AlignPair(j.q, j.t)
	if err != nil {
		return out, err
	}
	res.SourceFile = j.file
	out.res = res
	return out, nil
}
