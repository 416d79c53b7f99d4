package cmdutil

import (
	"context"

	"seqalign/core/fasta"
	"seqalign/internal/engine"
	"seqalign/internal/pipeline"
)

// RunStream runs the shared pipeline and forwards every kept result to out,
// giving up when ctx is done. It returns the pipeline stats and the first
// error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	aln pipeline.Aligner,
	queries []fasta.Record,
	targets pipeline.Source,
	out chan<- engine.Result,
) (pipeline.Stats, error) {
	return pipeline.ForEachAlignment(ctx, cfg, aln, queries, targets, func(r engine.Result) error {
		select {
		case out <- r:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}
